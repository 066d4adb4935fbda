package blocksize

import (
	"errors"

	"github.com/ardanlabs/blocksizing/foundation/validate"
)

// ErrInvalidParameters is matched by every error produced when a bundle
// fails validation.
var ErrInvalidParameters = errors.New("invalid parameters")

// InvalidParametersError reports the fields of a bundle that do not
// satisfy the model's input requirements.
type InvalidParametersError struct {
	Fields validate.FieldErrors
}

// Error implements the error interface.
func (ipe *InvalidParametersError) Error() string {
	return ErrInvalidParameters.Error() + ": " + ipe.Fields.Error()
}

// Is allows errors.Is to match against ErrInvalidParameters.
func (ipe *InvalidParametersError) Is(target error) bool {
	return target == ErrInvalidParameters
}

// Field returns the name of the first offending field.
func (ipe *InvalidParametersError) Field() string {
	if len(ipe.Fields) == 0 {
		return ""
	}
	return ipe.Fields[0].Field
}

// IsInvalidParameters checks if an error of type InvalidParametersError exists.
func IsInvalidParameters(err error) bool {
	var ipe *InvalidParametersError
	return errors.As(err, &ipe)
}

// GetInvalidParameters returns a copy of the InvalidParametersError pointer.
func GetInvalidParameters(err error) *InvalidParametersError {
	var ipe *InvalidParametersError
	if !errors.As(err, &ipe) {
		return nil
	}
	return ipe
}
