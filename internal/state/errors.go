package state

import "strings"

const (
	validationTitle   = "Validation"
	validationMessage = "Item cannot be empty!"
)

// Field names reported by ValidationError.
const (
	FieldNewItem  = "new-item"
	FieldEditItem = "edit-item"
)

// ValidationError is returned when submitted text is empty once trimmed.
type ValidationError struct {
	Field   string
	Title   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field string) *ValidationError {
	return &ValidationError{Field: field, Title: validationTitle, Message: validationMessage}
}

// validateText only looks at the trimmed form; callers store the raw text.
func validateText(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return newValidationError(field)
	}
	return nil
}
