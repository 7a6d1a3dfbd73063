package helper

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidationErrorMap flattens validator errors into field -> failed rules.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["body"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out[fe.Field()] = append(out[fe.Field()], rule)
	}
	return out
}

// BodyTypeErrorMap reports a JSON value of the wrong type (e.g. a number
// where a string is expected) as a field error. ok is false for any other
// decode failure, which stays a 400. sonic on go1.23+ decodes through
// encoding/json, so one error type covers both decoders.
func BodyTypeErrorMap(err error) (map[string][]string, bool) {
	var jte *json.UnmarshalTypeError
	if errors.As(err, &jte) {
		field := jte.Field
		if field == "" {
			field = "body"
		}
		return map[string][]string{field: {"type=" + jte.Type.String()}}, true
	}
	return nil, false
}
