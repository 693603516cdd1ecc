package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every rejected field of a request so the
// client can render all of them at once.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, e := range v {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", e.Field, e.Message)
	}
	return b.String()
}

// ToMap shapes the errors for the response envelope's details field.
func (v ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v))
	for _, e := range v {
		m[e.Field] = e.Message
	}
	return m
}

// IsEmpty reports whether s contains nothing but whitespace.
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

var (
	emailRegex   = regexp.MustCompile(`^[^@\s]+@[^@\s.]+(\.[^@\s.]+)+$`)
	numericRegex = regexp.MustCompile(`^[0-9]+$`)
)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// IsValidDate parses a YYYY-MM-DD date.
func IsValidDate(dateStr string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsValidPhoneNumber accepts 10 to 13 digits with an optional leading +
// and ignores spaces and dashes.
func IsValidPhoneNumber(phone string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	digits = strings.TrimPrefix(digits, "+")
	if n := len(digits); n < 10 || n > 13 {
		return false
	}
	return IsNumeric(digits)
}

// IsInSlice reports whether value is one of the allowed values.
func IsInSlice(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
