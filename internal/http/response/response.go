// Package response shapes the JSON bodies written by HTTP handlers. Every
// failure is a {"detail": msg} object; validation failures add the offending
// fields.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mavecode/mavecode-api/internal/storage"
)

// Common details.
const (
	DetailInvalidBody = "invalid request body"
	DetailInternal    = "Internal server error"
	DetailMaintenance = "Service in maintenance mode"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Detail string `json:"detail" example:"Course not found"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the body of a 422 answer.
type ValidationResponse struct {
	Detail string       `json:"detail"`
	Errors []FieldError `json:"errors"`
}

// MessageResponse is the body of actions that return no entity.
type MessageResponse struct {
	Message string `json:"message" example:"Course deleted"`
}

// Error returns an ErrorResponse with msg.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Detail: msg}
}

// Message returns a MessageResponse with msg.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError turns validator errors into a readable response.
func ValidationError(errs validator.ValidationErrors) ValidationResponse {
	fields := make([]FieldError, 0, len(errs))
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msg := describe(err)
		fields = append(fields, FieldError{Field: err.Field(), Message: msg})
		msgs = append(msgs, msg)
	}
	return ValidationResponse{Detail: strings.Join(msgs, ", "), Errors: fields}
}

func describe(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", err.Field())
	case "min":
		return fmt.Sprintf("field %s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}

// Fail writes status with a detail body.
func Fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, Error(msg))
}

// Invalid writes the answer for a body that failed to decode or validate:
// 422 naming the fields for validation failures and JSON values of the wrong
// type, 400 for a body that is not JSON at all.
func Invalid(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, ValidationError(verrs))
		return
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		InvalidField(w, r, typeErr.Field, fmt.Sprintf("field %s must be %s", typeErr.Field, kindName(typeErr.Type)))
		return
	}
	Fail(w, r, http.StatusBadRequest, DetailInvalidBody)
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "of another type"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		return "a boolean"
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	default:
		return "of type " + t.String()
	}
}

// Unavailable writes the maintenance answer.
func Unavailable(w http.ResponseWriter, r *http.Request) {
	Fail(w, r, http.StatusServiceUnavailable, DetailMaintenance)
}

// Internal writes 503 when the store is gone and 500 otherwise.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrUnavailable) {
		Unavailable(w, r)
		return
	}
	Fail(w, r, http.StatusInternalServerError, DetailInternal)
}

// InvalidField writes a 422 answer for a single field that passed struct
// validation but could not be interpreted.
func InvalidField(w http.ResponseWriter, r *http.Request, field, msg string) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, ValidationResponse{
		Detail: msg,
		Errors: []FieldError{{Field: field, Message: msg}},
	})
}
