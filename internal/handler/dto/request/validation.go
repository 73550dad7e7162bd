package request

import (
	"sync"

	"pickup-scheduler/internal/domain/slot"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators installs custom binding tags on gin's validator engine.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("isoslot", validateISOSlot)
	})
	return err
}

// validateISOSlot accepts ISO-8601 UTC instants with a literal trailing Z.
func validateISOSlot(fl validator.FieldLevel) bool {
	_, err := slot.Parse(fl.Field().String())
	return err == nil
}
