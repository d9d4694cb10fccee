package models

import "fmt"

// RequiredFieldError reports a field that must be present before an entity is saved.
type RequiredFieldError struct {
	Field string
}

func (e *RequiredFieldError) Error() string {
	return fmt.Sprintf("required field missing: %s", e.Field)
}

// InvalidChoiceError reports a value outside a field's allowed set.
type InvalidChoiceError struct {
	Field string
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", e.Value, e.Field)
}
