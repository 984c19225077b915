package validate

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/store-api/internal/domain"
)

// Validator valida DTOs contra sus tags `validate:"..."` y traduce las fallas
// a un domain.ValidationError con mensajes por campo.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con las reglas personalizadas registradas.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// decimal.Decimal se valida como float64 para que apliquen gt, gte, lte, etc.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// password: al menos un dígito, una minúscula, una mayúscula, un símbolo y sin espacios.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})

	// Los mensajes usan el nombre JSON del campo, no el nombre Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Struct valida un DTO. Devuelve *domain.ValidationError (envuelve ErrInvalidInput)
// con un mensaje por campo fallido, o nil si todo pasa.
func (va *Validator) Struct(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewValidationError(err.Error())
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fieldMessage(fe))
	}
	return domain.NewValidationError(messages...)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", field)
	case "email":
		return fmt.Sprintf("%s no es un email válido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser al menos %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s debe ser máximo %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s debe ser numérico", field)
	case "password":
		return fmt.Sprintf("%s debe incluir mayúscula, minúscula, dígito y símbolo, sin espacios", field)
	case "dive":
		return fmt.Sprintf("%s contiene elementos inválidos", field)
	default:
		return fmt.Sprintf("%s es inválido (%s)", field, fe.Tag())
	}
}

// isStrongPassword exige dígito, minúscula, mayúscula y símbolo; rechaza espacios.
func isStrongPassword(s string) bool {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSymbol
}

// NFC normaliza una cadena a forma NFC y recorta espacios: así "café" compuesto
// y descompuesto comparan iguales en los chequeos de unicidad y búsqueda.
func NFC(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
