// Package validators contains validators found throughout the application
// that have been abstracted away from the main code
package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is the client facing description of one failed rule
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// Register installs the custom rules on gin's binding validator and makes
// field errors use JSON names. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}

			return name
		})

		v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
			return ContentTypeValidator(fl.Field().String()) == nil
		})
	})
}

// Describe turns a binding error into field level details. Errors that
// aren't validation errors (e.g. malformed JSON) become a single entry.
func Describe(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{
				Field:   fe.Field(),
				Rule:    fe.Tag(),
				Message: message(fe),
			})
		}

		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{
			Field:   typeErr.Field,
			Rule:    "type",
			Message: fmt.Sprintf("expected %s", typeErr.Type),
		}}
	}

	return []FieldError{{Rule: "body", Message: "request body must be a JSON object"}}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "url":
		return fe.Field() + " must be a valid URL"
	case "contenttype":
		return ErrContentTypeInvalid.Error()
	}

	return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
}
