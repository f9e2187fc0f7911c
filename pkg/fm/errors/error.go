package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes the type of error encountered during parsing or analysis.
type ErrorType string

const (
	ErrorTypeSyntax     ErrorType = "syntax"     // XML syntax error
	ErrorTypeStructural ErrorType = "structural" // Schema violation (missing/duplicate/invalid fields)
	ErrorTypeConstraint ErrorType = "constraint" // Unrecognized cross-tree constraint statement
	ErrorTypeSolver     ErrorType = "solver"     // SAT oracle failure
	ErrorTypeIO         ErrorType = "io"         // File I/O error
)

// Location identifies where in a model document an error occurred.
type Location struct {
	File string // Source file path (may be a synthetic name for in-memory parses)
	Line int    // 1-based line number, 0 if unknown
}

// IsValid returns true if the location carries any position information.
func (l Location) IsValid() bool {
	return l.File != "" || l.Line > 0
}

// String returns the location formatted as "file:line".
func (l Location) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return l.File
}

// Error represents a rich error with category, location, and an optional suggestion.
type Error struct {
	Type       ErrorType // Category of error
	Message    string    // Error message
	Location   Location  // Source location
	Suggestion string    // Suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("\n  --> %s", e.Location.String()))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("\n  = suggestion: %s", e.Suggestion))
	}

	return sb.String()
}

// ErrorList represents a collection of errors encountered during parsing.
// It allows accumulating multiple errors instead of failing on the first one.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message string, location Location) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Location: location,
	})
}

// AddErrorWithSuggestion creates and adds a new error with a suggestion.
func (el *ErrorList) AddErrorWithSuggestion(errType ErrorType, message string, location Location, suggestion string) {
	el.Add(&Error{
		Type:       errType,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// HasErrorType returns true if the list contains at least one error of the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d error(s):\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("\nerror %d:\n%s\n", i+1, err.Error()))
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
