package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator is the go-playground/validator backed [Validator].
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] that reports JSON field names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &StructValidator{validate: v}
}

// Validate implements [Validator]. Pointers are dereferenced; a nil pointer
// or a non-struct value yields [ErrUnsupportedType]. When fields are given
// only those fields are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	val := reflect.ValueOf(obj)
	for val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return ErrUnsupportedType
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		for _, f := range fields {
			if _, ok := val.Type().FieldByName(strings.Split(f, ".")[0]); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = s.validate.StructPartialCtx(ctx, val.Interface(), fields...)
	} else {
		err = s.validate.StructCtx(ctx, val.Interface())
	}

	return toFieldError(err)
}

func toFieldError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	first := verrs[0]
	return fmt.Errorf("%w: %w", ErrInvalidPayload, &FieldError{
		Field: jsonPath(first.Namespace()),
		Rule:  first.Tag(),
		Param: first.Param(),
	})
}

// jsonPath drops the root type name from a validator namespace:
// "QuoteRequest.lines[0].qty" becomes "lines[0].qty".
func jsonPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}
