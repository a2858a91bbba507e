package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/adrienbaron/lecoindujazz/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("seat_status", validateSeatStatus)

	return validator
}

func validateSeatStatus(fl validator.FieldLevel) bool {
	status := domain.SeatStatus(fl.Field().String())

	return status == domain.SeatStatusAvailable ||
		status == domain.SeatStatusLocked ||
		status == domain.SeatStatusPurchased
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", err.Param())
	case "max":
		return fmt.Sprintf("must contain at most %s item(s)", err.Param())
	case "seat_status":
		return "must be one of: available, locked, purchased"
	default:
		return "is invalid"
	}
}
