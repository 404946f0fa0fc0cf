package validation

import (
	"regexp"
	"strings"
)

// Violation is a single failed field check. Checks run in declaration order so
// callers can report the first failure only.
type Violation struct {
	Field   string
	Message string
}

type Violations []Violation

func (v Violations) Empty() bool { return len(v) == 0 }

// First returns the earliest recorded violation.
func (v Violations) First() Violation {
	if len(v) == 0 {
		return Violation{}
	}
	return v[0]
}

func (v *Violations) add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Basic validators
func Required(field, value, message string, v *Violations) {
	if strings.TrimSpace(value) == "" {
		v.add(field, message)
	}
}

func Email(field, value, message string, v *Violations) {
	if !emailRegex.MatchString(strings.TrimSpace(value)) {
		v.add(field, message)
	}
}

func MinLen(field, value string, n int, message string, v *Violations) {
	if len(value) < n {
		v.add(field, message)
	}
}

func MinInt(field string, value, minVal int, message string, v *Violations) {
	if value < minVal {
		v.add(field, message)
	}
}
