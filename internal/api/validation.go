package api

import (
	"fmt"

	"mealmate/internal/core/inventory"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators 在 gin 的 validator 上註冊自訂規則
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("ingredient_category", func(fl validator.FieldLevel) bool {
		return inventory.IsValidCategory(fl.Field().String())
	})
}
