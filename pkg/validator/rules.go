package validator

import (
	"fmt"
	"strings"
	"unicode"
)

// Required checks that value is not the empty string. Whitespace counts as content.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// RequiredString checks that value has non-whitespace content.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail is a deliberately loose address check: longer than three
// characters and containing an @. Deliverability is the mail server's concern.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 3 && strings.Contains(value, "@")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxBytes checks that value is at most n bytes long once encoded as UTF-8.
func MaxBytes(field, value string, n int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= n
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d bytes long", n),
			TranslationKey: "validation.max_bytes",
			TranslationValues: map[string]any{
				"field": field,
				"max":   n,
			},
		},
	}
}

// PasswordStrengthConfig describes the password policy checked by StrongPassword.
type PasswordStrengthConfig struct {
	MinLength      int
	MaxLength      int
	MinCharClasses int // of upper, lower, digit, other
}

// DefaultPasswordStrength returns an 8-72 character policy with at least two character classes.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:      8,
		MaxLength:      72,
		MinCharClasses: 2,
	}
}

func StrongPassword(field, value string, config PasswordStrengthConfig) Rule {
	return Rule{
		Check: func() bool {
			n := len([]rune(value))
			if n < config.MinLength || (config.MaxLength > 0 && n > config.MaxLength) {
				return false
			}
			return charClasses(value) >= config.MinCharClasses
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("must be at least %d characters and mix %d of: upper case, lower case, digits, symbols",
				config.MinLength, config.MinCharClasses),
			TranslationKey: "validation.strong_password",
			TranslationValues: map[string]any{
				"field":       field,
				"min_length":  config.MinLength,
				"max_length":  config.MaxLength,
				"min_classes": config.MinCharClasses,
			},
		},
	}
}

func charClasses(value string) int {
	var upper, lower, digit, other bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			other = true
		}
	}

	n := 0
	for _, ok := range []bool{upper, lower, digit, other} {
		if ok {
			n++
		}
	}
	return n
}
