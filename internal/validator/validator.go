// internal/validator/validator.go
package validator

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var nonBlank = regexp.MustCompile(`\S`)

func init() {
	Validate = validator.New()

	// String is not empty and not only whitespace.
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonBlank.MatchString(fl.Field().String())
	})

	// Amounts must be finite: NaN and ±Inf survive JSON-over-float64
	// paths in surprising ways and must never reach storage.
	_ = Validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	_ = Validate.RegisterValidation("txkind", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == "expense" || s == "income"
	})

	_ = Validate.RegisterValidation("billingcycle", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == "monthly" || s == "yearly"
	})

	_ = Validate.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "Happy", "Neutral", "Stressed", "Impulsive":
			return true
		}
		return false
	})
}
