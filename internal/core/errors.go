package core

import "strings"

// ConversionError aggregates the error messages collected by a session when a
// conversion fails. It is returned by ConvertOrFail; Convert reports the same
// messages through Session.Errors instead.
type ConversionError struct {
	Messages []string
}

func (e *ConversionError) Error() string {
	return "conversion failed: " + strings.Join(e.Messages, "; ")
}
