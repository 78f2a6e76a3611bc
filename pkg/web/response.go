// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidAccountType validates a request field as a known fiat account type.
var ValidAccountType validator.Func = func(fl validator.FieldLevel) bool {
	if accountType, ok := fl.Field().Interface().(string); ok {
		return accountType == "savings" || accountType == "checking"
	}

	return false
}

// GetErrorMsg returns a human readable message for the failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be at least " + fe.Param()
	case "max":
		return " must not exceed " + fe.Param()
	case "gt":
		return " must be greater than " + fe.Param()
	case "accounttype":
		return " must be either savings or checking"
	case "cryptocurrency":
		return " is not a supported currency"
	default:
		return " is invalid"
	}
}
