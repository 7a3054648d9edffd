package dto

import "github.com/go-playground/validator/v10"

// validate instancia compartida; los tags viven en los structs de request.
var validate = validator.New()

// Validate aplica las reglas `validate` del struct. Devuelve el error del
// validador tal cual; los handlers lo mapean a VALIDATION 400.
func Validate(s interface{}) error {
	return validate.Struct(s)
}
