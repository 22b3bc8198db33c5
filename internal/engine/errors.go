package engine

import "fmt"

// ValidationError reports an input field outside its physically valid range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// ComputationError reports an intermediate value that would make a formula
// undefined (division by zero, non-finite result).
type ComputationError struct {
	Field  string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computation: %s: %s", e.Field, e.Reason)
}
