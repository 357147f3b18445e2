package model

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding tags on gin's validator.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("estado", func(fl validator.FieldLevel) bool {
			return Lifecycle(fl.Field().String()).Valid()
		})
	}
}
