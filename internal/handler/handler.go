package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the binding rules shared by the handlers.
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("phonestatus", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || s == "valid" || s == "invalid"
	})
}
