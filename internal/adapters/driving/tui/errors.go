package tui

import "errors"

// ErrMissingTocService is returned when the table of contents service is not provided.
var ErrMissingTocService = errors.New("tui: table of contents service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
