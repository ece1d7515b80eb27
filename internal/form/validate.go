// Package form implements the contact form: per-field validators, the phone
// input transform, and the submission state machine. Validators are pure
// and re-run from current values on every change and blur; they never look
// at event deltas.
package form

import (
	"regexp"
	"strings"
)

// ErrorKind classifies a field validation failure. Validation errors are
// values surfaced inline next to the field, never Go errors.
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrRequired
	ErrInvalidFormat
	ErrInvalidLength
	ErrTooShort
	ErrTooLong
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNone:
		return "none"
	case ErrRequired:
		return "required"
	case ErrInvalidFormat:
		return "invalid_format"
	case ErrInvalidLength:
		return "invalid_length"
	case ErrTooShort:
		return "too_short"
	case ErrTooLong:
		return "too_long"
	}
	return "unknown"
}

// Message returns the inline text shown under the field.
func (k ErrorKind) Message() string {
	switch k {
	case ErrRequired:
		return "This field is required."
	case ErrInvalidFormat:
		return "Please enter a valid email address."
	case ErrInvalidLength:
		return "Phone number must be exactly 10 digits."
	case ErrTooShort:
		return "Message must be at least 20 characters."
	case ErrTooLong:
		return "Message must be at most 1000 characters."
	}
	return ""
}

// MessageMin and MessageMax bound the trimmed message length.
const (
	MessageMin = 20
	MessageMax = 1000
)

// PhoneDigits is the exact digit count a non-empty phone number must have.
const PhoneDigits = 10

// local@domain.tld shape; intentionally loose beyond that.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName requires a non-blank value.
func ValidateName(value string) ErrorKind {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	return ErrNone
}

// ValidateEmail requires a non-blank value of local@domain.tld shape.
func ValidateEmail(value string) ErrorKind {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ErrRequired
	}
	if !emailRe.MatchString(trimmed) {
		return ErrInvalidFormat
	}
	return ErrNone
}

// ValidatePhone accepts empty (the field is optional) and otherwise
// requires exactly ten digits, ignoring formatting characters.
func ValidatePhone(value string) ErrorKind {
	if strings.TrimSpace(value) == "" {
		return ErrNone
	}
	if len(digitsOf(value)) != PhoneDigits {
		return ErrInvalidLength
	}
	return ErrNone
}

// ValidateMessage requires a trimmed length in [MessageMin, MessageMax].
func ValidateMessage(value string) ErrorKind {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		return ErrRequired
	case len([]rune(trimmed)) < MessageMin:
		return ErrTooShort
	case len([]rune(trimmed)) > MessageMax:
		return ErrTooLong
	}
	return ErrNone
}

func digitsOf(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
