package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("validators: value is not a struct")
	ErrUnknownField    = errors.New("validators: no such field")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// FieldError names the first payload field that failed a rule.
type FieldError struct {
	// Field is the JSON name of the field, e.g. "lines[0].qty".
	Field string
	// Rule is the failed tag, e.g. "required" or "gte".
	Rule string
	// Param is the tag parameter, e.g. "0" for gte=0.
	Param string
}

func (e *FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %s failed rule %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("field %s failed rule %s", e.Field, e.Rule)
}
