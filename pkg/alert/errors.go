package alert

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument matches every validation error returned by this package.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoRegistry is returned by Show when the builder is not bound to a registry.
	ErrNoRegistry = errors.New("alert builder has no registry")
)

// InvalidArgumentError describes a rejected argument. Error returns the message as is.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

// Is reports true for ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(format string, args ...any) error {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is a validation error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
