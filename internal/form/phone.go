package form

import "fmt"

// FormatPhone is the non-validating input transform applied on every phone
// keystroke, before validation: strip non-digits, cap at ten, and render
// progressively as (ddd), (ddd) ddd, (ddd) ddd-dddd. Three or fewer digits
// stay raw so backspacing past the area code behaves naturally.
func FormatPhone(value string) string {
	digits := digitsOf(value)
	if len(digits) > PhoneDigits {
		digits = digits[:PhoneDigits]
	}
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return fmt.Sprintf("(%s) %s", digits[:3], digits[3:])
	default:
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
}
