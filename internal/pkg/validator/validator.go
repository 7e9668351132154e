package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the wire field names, not Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors converts a validation error into a per-field message map,
// e.g. {"device_id": ["This field is required."]}.
func FieldErrors(err error) map[string][]string {
	out := make(map[string][]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["non_field_errors"] = []string{err.Error()}
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s items.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this field has at most %s items.", fe.Param())
	default:
		return fmt.Sprintf("Failed validation for '%s'.", fe.Tag())
	}
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
