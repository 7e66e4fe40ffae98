package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MaxStationNameLength bounds a normalized station name, in characters.
const MaxStationNameLength = 64

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// StationNameRequest carries a normalized station name through the validator.
type StationNameRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// ValidateStationName checks a normalized station name.
func ValidateStationName(name string) error {
	return ValidateStationNameRequest(&StationNameRequest{Name: name})
}

// ValidateStationNameRequest validates req using its struct tags.
func ValidateStationNameRequest(req *StationNameRequest) error {
	if req == nil {
		return errors.New("station name request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "max":
			return fmt.Errorf("%s: must not exceed %s characters", field, e.Param())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
