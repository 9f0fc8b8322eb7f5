package apierrors

import (
	"fmt"

	"tasklist/pkg/translator"
)

// JsonErr represents the JSON structure for apierrors.
type JsonErr struct {
	ErrDetails Err `json:"error"`
}

// Err represents the error with a code, a message and, for validation
// failures, one message per invalid field.
type Err struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Error implements the error interface for JsonErr.
func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.ErrDetails.Code, e.ErrDetails.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{ErrDetails: Err{Code: code, Message: GetTransErrorMsg(msgKey, lang)}}
}

// CreateValidationError translates the message and, for every invalid
// field, the message key it is mapped to.
func CreateValidationError(code int, msgKey string, fieldKeys map[string]string, lang string) JsonErr {
	jsonErr := CreateError(code, msgKey, lang)
	if len(fieldKeys) == 0 {
		return jsonErr
	}

	jsonErr.ErrDetails.Fields = make(map[string]string, len(fieldKeys))
	for field, key := range fieldKeys {
		jsonErr.ErrDetails.Fields[field] = GetTransErrorMsg(key, lang)
	}
	return jsonErr
}

// GetTransErrorMsg retrieves the translated error message.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translator.Localize(lang, msgKey)
}
