package cart

import "fmt"

// ValidationError reports bad local input to a mutator. It is returned
// synchronously, before any gateway call, and never changes store status.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
