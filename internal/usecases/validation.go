package usecases

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "swea-cms.backend/internal/domain/errors"
	"swea-cms.backend/internal/domain/i18n"
)

// validate is shared by all services. Field names in error output follow the
// json tag so the dashboard can map them back onto form fields.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// multilang: at least one language carries a non-empty value
	_ = v.RegisterValidation("multilang", func(fl validator.FieldLevel) bool {
		switch f := fl.Field().Interface().(type) {
		case i18n.Text:
			return f.HasValue()
		case i18n.Tags:
			return f.HasValue()
		}
		return false
	})

	return v
}

// checkInput runs struct validation and converts validator errors into the
// domain ValidationError shape.
func checkInput(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.BadRequest("invalid input")
	}

	out := domainerrors.NewValidationError()
	for _, fe := range verrs {
		out.Add(fe.Field(), validationMessage(fe))
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "multilang":
		return "at least one language value is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}
