package extract

import "fmt"

// MissingFieldError reports a required field whose pattern matched nowhere
// in the log text.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("required field %q not found in log text", e.Field)
}

// MalformedValueError reports a field that matched but could not be
// converted to its semantic type.
type MalformedValueError struct {
	Field string
	Raw   string
	Err   error
}

func (e MalformedValueError) Error() string {
	return fmt.Sprintf("field %q: cannot parse %q: %v", e.Field, e.Raw, e.Err)
}

func (e MalformedValueError) Unwrap() error {
	return e.Err
}
