package rational

import (
	"errors"
	"fmt"
)

// ErrInvalidSpecification is matched by every input validation failure:
// non-positive sampling periods, invalid filter parameters, empty or malformed
// coefficient sequences and degenerate transform results.
var ErrInvalidSpecification = errors.New("rational: invalid specification")

// SpecError names the input field that failed validation.
type SpecError struct {
	Field  string
	Reason string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is [ErrInvalidSpecification].
func (e *SpecError) Is(target error) bool {
	return target == ErrInvalidSpecification
}

// Invalidf returns a *SpecError for field with a formatted reason.
func Invalidf(field, format string, args ...any) error {
	return &SpecError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
