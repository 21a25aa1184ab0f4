package helper

import (
	"github.com/go-playground/validator/v10"
)

// FormatValidatorErrors mengubah validator.ValidationErrors menjadi
// map field → pesan, siap dipakai JsonValidationError.
func FormatValidatorErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = "must be at least " + fe.Param() + " characters"
		case "max":
			msg = "must be at most " + fe.Param() + " characters"
		case "len":
			msg = "must be exactly " + fe.Param() + " characters"
		case "numeric":
			msg = "must contain digits only"
		case "startswith":
			msg = "must start with " + fe.Param()
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "uuid":
			msg = "must be a valid UUID"
		default:
			msg = "is invalid"
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
