package gomap

import "fmt"

// ConvertError reports a failed host-value conversion.
type ConvertError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *ConvertError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("convert error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("convert error: %s", e.Message)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
