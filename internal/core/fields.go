package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseYear parses a publication year typed as text. The model accepts any
// integer; range limits are a front-end concern.
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Fields: []string{"Year"}}
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("year must be a whole number, got %q", s)
	}

	return year, nil
}

// ParseRead interprets a yes/no style answer to "have you read this book?".
// Anything not recognized as an affirmative counts as unread.
func ParseRead(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "read":
		return true
	default:
		return false
	}
}
