package matrixcfg

import "fmt"

// ParseError represents a malformed line or value in the settings file.
type ParseError struct {
	// File is the settings file path ("" when parsing a reader)
	File string
	// Line is the 1-based line number of the offending assignment
	Line int
	// Key is the settings key, if one was recognized on the line
	Key string
	// Message describes what is wrong with the line or value
	Message string
	// Underlying error if any (e.g. strconv failure)
	Err error
}

func (e *ParseError) Error() string {
	loc := e.File
	if loc == "" {
		loc = "settings"
	}
	if e.Key != "" {
		return fmt.Sprintf("%s:%d: %s: %s", loc, e.Line, e.Key, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s", loc, e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a setting whose value is outside its
// documented range.
type ValidationError struct {
	// Key is the settings key the value belongs to
	Key string
	// Message describes the violated constraint
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	return e.Message
}

// NewValidationError creates a validation error for the given key.
func NewValidationError(key, message string) *ValidationError {
	return &ValidationError{Key: key, Message: message}
}

// IsParseError checks if an error is a settings parse error.
func IsParseError(err error) bool {
	_, ok := err.(*ParseError)
	return ok
}

// IsValidationError checks if an error is a range validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
