package dto

import (
	"github.com/expenze/backend/internal/domain/planning"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("monthkey", validMonthKey)
	}
}

// validMonthKey accepts YYYY-MM strings. Empty values pass so the tag
// composes with omitempty on optional fields.
func validMonthKey(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	return planning.MonthKey(s).Valid()
}
