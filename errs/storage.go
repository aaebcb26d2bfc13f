package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Content storage errors. The slot layer absorbs backend failures by falling
// back to memory, so ErrSlotUnavailable rarely escapes it; ErrSaveFailed is the
// one mutation-time error handlers surface to the admin UI.
var (
	ErrSlotEmpty       = errors.New("slot is empty")
	ErrSlotUnavailable = errors.New("persistent storage unavailable")
	ErrCorruptRecord   = errors.New("stored collection is corrupt")
	ErrSaveFailed      = errors.New("failed to persist collection")
)

// NewSaveFailedError wraps a collection write failure for the admin UI banner.
// The controller has already rolled the in-memory state back by the time this
// reaches a handler.
func NewSaveFailedError(collection string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrSaveFailed,
		Details:    fmt.Sprintf("Changes to %s could not be saved", collection),
		Cause:      cause,
	}
}

func IsSaveFailed(err error) bool {
	return errors.Is(err, ErrSaveFailed)
}

func IsSlotEmpty(err error) bool {
	return errors.Is(err, ErrSlotEmpty)
}
