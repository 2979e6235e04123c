package handlers

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validatorsOnce sync.Once
	validatorsErr  error
)

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator.
func RegisterValidators() error {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validatorsErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		validatorsErr = v.RegisterValidation("gst_percent", validateGSTPercent)
	})
	return validatorsErr
}

// validateGSTPercent accepts a rate between 0 and 100. Text that is not a number is left
// to the numeric policy.
func validateGSTPercent(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return true
	}
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(100))
}
