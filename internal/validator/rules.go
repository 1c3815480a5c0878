package validator

import (
	"log"
	"strings"

	"jobboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует кастомные функции валидации.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Критическая ошибка конфигурации - приложение не должно запускаться.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-job-type': значение из job_type_enum
	mustRegister("is-job-type", validateJobType)

	// 'notblank': строка не пуста после TrimSpace. Обычный 'required'
	// пропускает строки из одних пробелов.
	mustRegister("notblank", validateNotBlank)
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустые значения проверяет 'required'
	}
	return models.ValidJobType(models.JobType(value))
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
