// Package validation evaluates declarative per-field rule tables against
// incoming write requests. All failing rules are collected, not just the first.
package validation

import (
	"regexp"
	"strings"

	"github.com/chamarasara/cafe-management-backend/apperror"
)

type Rule struct {
	Field   string
	Message string
	Valid   func(value string) bool
}

// Apply runs every rule against the named values and returns the aggregated
// failures, or nil when all rules pass.
func Apply(rules []Rule, values map[string]string) []apperror.FieldError {
	var failed []apperror.FieldError
	for _, rule := range rules {
		if !rule.Valid(values[rule.Field]) {
			failed = append(failed, apperror.FieldError{
				Field:   rule.Field,
				Message: rule.Message,
			})
		}
	}
	return failed
}

func NotEmpty(value string) bool {
	return strings.TrimSpace(value) != ""
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// Local mobile numbering: 8 digits, starting with 8 or 9.
var phonePattern = regexp.MustCompile(`^[89]\d{7}$`)

func IsPhoneNumber(value string) bool {
	return phonePattern.MatchString(value)
}
