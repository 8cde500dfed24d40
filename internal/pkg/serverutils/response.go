package serverutils

import "chatlog-be/internal/pkg/apperror"

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Success bool              `json:"success"`
	Code    apperror.Kind     `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func ErrorResponse(code apperror.Kind, message string, fields map[string]string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  fields,
	}
}
