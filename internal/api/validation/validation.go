package validation

import "time"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a wire-format date. Malformed input is an error, never
// coerced.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func validDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}
