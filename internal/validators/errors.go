package validators

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is wrapped by every [*ValidationError].
var ErrValidationFailed = errors.New("validation failed")

// ValidationError reports the first failed field of a validation run.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
