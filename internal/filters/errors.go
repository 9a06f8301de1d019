package filters

import (
	"fmt"
	"strings"
)

// Issue describes one rejected query parameter.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// ValidationError is returned when query parameters fail coercion or validation.
type ValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
	}
	return "invalid query parameters: " + strings.Join(parts, "; ")
}
