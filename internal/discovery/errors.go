package discovery

import (
	"errors"

	"github.com/saviobatista/svc-discovery/internal/translator"
	"github.com/saviobatista/svc-discovery/internal/window"
)

// Error classes returned by Service. Match them with errors.Is.
var (
	ErrInvalidInput        = window.ErrInvalidInput
	ErrAreaTooLarge        = window.ErrAreaTooLarge
	ErrInternalTranslation = translator.ErrInternalTranslation
	ErrBackendUnavailable  = errors.New("backend unavailable")
)
