package validator

import (
	"reflect"
	"strings"

	"cycle-booking-service/pkg/calendar"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		_, err := calendar.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "uuid":
				errors[field] = field + " must be a valid UUID"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "isodate":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "timeofday":
				errors[field] = field + " must be a time in HH:MM format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
