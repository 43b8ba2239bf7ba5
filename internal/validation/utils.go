package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/adder/internal/calc"
	"github.com/deppfellow/adder/internal/errs"
)

// Validatable is implemented by every request struct passed to BindAndValidate.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a field error produced outside go-playground/validator.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors lets Validate implementations report several field errors.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report the request field name ("a") rather than the Go field name ("A").
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"param", "query", "json"} {
			name := strings.Split(field.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return strings.ToLower(field.Name)
	})

	if err := v.RegisterValidation("operand", isOperand); err != nil {
		panic(fmt.Sprintf("registering operand validation: %v", err))
	}

	return v
}

func isOperand(fl validator.FieldLevel) bool {
	_, err := calc.ParseOperand(fl.Field().String())
	return err == nil
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// BindAndValidate binds path, query and body values into payload and runs
// its Validate method.
//
// A Validate method that already returns an *errs.HTTPError decides the
// response on its own; anything else is converted into a 400 with field errors.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil)
	}

	err := payload.Validate()
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(msg, true, nil, fieldErrors)
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return "Invalid request"
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customErrors CustomValidationErrors
	if errors.As(err, &customErrors) {
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed: " + err.Error(), nil
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: fieldMessage(fe),
		})
	}

	return "Validation failed", fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"

	case "operand":
		return "must be a number"

	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())

	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
	}
	return fe.Tag()
}
