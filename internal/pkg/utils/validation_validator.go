package utils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// Chat identities are platform user ids: digits or a compact opaque token,
// never free text.
var chatIdentityRegex = regexp.MustCompile(`^[A-Za-z0-9_\-]{1,64}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("chat_identity", validateChatIdentity)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateChatIdentity(fl validator.FieldLevel) bool {
	return chatIdentityRegex.MatchString(fl.Field().String())
}
