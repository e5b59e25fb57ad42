package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil corpus service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingCorpusService)
	})

	t.Run("corpus only creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Corpus: &mockCorpusService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})

	t.Run("corpus and toc creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Corpus: &mockCorpusService{},
			Toc:    &mockTocService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil corpus service returns error", func(t *testing.T) {
		ports := &Ports{Toc: &mockTocService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingCorpusService)
	})

	t.Run("corpus only is valid", func(t *testing.T) {
		ports := &Ports{Corpus: &mockCorpusService{}}
		assert.NoError(t, ports.Validate())
	})
}
