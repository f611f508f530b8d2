// Package schema holds the validation rules and pre-save normalization of
// events and bookings. Repositories run a pipeline before every write.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"devevents/internal/domain"
)

// emailRegex matches local@domain with at least one dot in the domain and no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// objectIDRegex matches a 24 character hex record id.
var objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

var fieldLabels = map[string]string{
	"EventID": "Event ID",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("booking_email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register booking_email validation: %v", err))
	}
	return v
}

// validateStruct runs the struct tag rules and converts failures into a *domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	label, ok := fieldLabels[fe.StructField()]
	if !ok {
		label = fe.StructField()
	}
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice && strings.HasSuffix(label, "s") {
			return label + " are required"
		}
		return label + " is required"
	case "min":
		return label + " must contain at least one item"
	case "oneof":
		return label + " must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "booking_email":
		return "Please provide a valid email address"
	}
	return label + " is invalid"
}
