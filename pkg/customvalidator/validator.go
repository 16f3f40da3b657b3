package customvalidator

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует доменные правила валидации
// в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	// null.String — структура; без распаковки валидатор сравнивал бы
	// тег с самой структурой, а не с её значением.
	v.RegisterCustomTypeFunc(unwrapNullString, null.String{})

	if err := v.RegisterValidation("equipment_category", isEquipmentCategory); err != nil {
		return err
	}
	if err := v.RegisterValidation("equipment_status", isEquipmentStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_type", isRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_priority", isRequestPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_stage", isRequestStage); err != nil {
		return err
	}
	if err := v.RegisterValidation("access_level", isAccessLevel); err != nil {
		return err
	}
	return nil
}

func unwrapNullString(field reflect.Value) interface{} {
	if n, ok := field.Interface().(null.String); ok {
		if !n.Valid {
			// Непереданное поле ведёт себя как пустое: omitempty его пропустит.
			return nil
		}
		return n.String
	}
	return nil
}

func oneOf(fl validator.FieldLevel, allowed ...string) bool {
	s := fl.Field().String()
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func isEquipmentCategory(fl validator.FieldLevel) bool {
	return oneOf(fl, "Machine", "Vehicle", "Computer", "Other")
}

func isEquipmentStatus(fl validator.FieldLevel) bool {
	return oneOf(fl, "Operational", "Down", "Maintenance")
}

func isRequestType(fl validator.FieldLevel) bool {
	return oneOf(fl, "Corrective", "Preventive")
}

func isRequestPriority(fl validator.FieldLevel) bool {
	return oneOf(fl, "Low", "Medium", "High", "Critical")
}

func isRequestStage(fl validator.FieldLevel) bool {
	return oneOf(fl, "New", "In Progress", "Repaired", "Scrap")
}

func isAccessLevel(fl validator.FieldLevel) bool {
	return oneOf(fl, "read", "write")
}
