package validator

import "strings"

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
		},
	}
}

// Custom wraps an arbitrary check.
func Custom(field string, check func() bool, message string) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:   field,
			Message: message,
		},
	}
}
