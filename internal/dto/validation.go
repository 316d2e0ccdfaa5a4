package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	FlagYes = "Yes"
	FlagNo  = "No"
)

// RegisterValidations adds the custom rules used by the request shapes.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("yesno", func(fl validator.FieldLevel) bool {
		_, ok := ParseFlag(fl.Field().String())
		return ok
	})
}

// ParseFlag reads a "Yes"/"No" flag, ignoring case and surrounding spaces.
func ParseFlag(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

// FormatFlag renders a boolean as "Yes"/"No".
func FormatFlag(b bool) string {
	if b {
		return FlagYes
	}
	return FlagNo
}
