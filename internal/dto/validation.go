package dto

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NewValidator builds the request validator including the custom phone rule.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return nil, err
	}
	return v, nil
}

// validatePhone accepts any value containing at least one digit once common
// separators are stripped. The stored value keeps its separators.
func validatePhone(fl validator.FieldLevel) bool {
	cleaned := phoneSeparators.Replace(fl.Field().String())
	for _, r := range cleaned {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
