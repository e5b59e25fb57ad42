package cli

import (
	"context"

	"github.com/custodia-labs/regdoc/internal/core/domain"
	"github.com/custodia-labs/regdoc/internal/core/ports/driving"
)

// stubTocService is an empty driving.TocService.
type stubTocService struct{}

func (s *stubTocService) Items(_ context.Context) ([]domain.TocItem, error) {
	return nil, nil
}

func (s *stubTocService) Item(_ context.Context, _ int) (domain.TocItem, error) {
	return domain.TocItem{}, domain.ErrIndexOutOfRange
}

func (s *stubTocService) ItemText(_ context.Context, _ int) (domain.SectionText, error) {
	return domain.SectionText{}, domain.ErrIndexOutOfRange
}

func (s *stubTocService) DocumentTree(_ context.Context, _ string) ([]domain.TocItem, error) {
	return nil, nil
}

var _ driving.TocService = (*stubTocService)(nil)
