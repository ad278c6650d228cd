package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// api errors
	ErrInvalidParams  = errors.New("invalid params")
	ErrMessageTooLong = errors.New("message is too long")
)

// ErrorField describes a single invalid request field.
type ErrorField struct {
	FieldName    string `json:"field"`
	ErrorMessage string `json:"message"`
}

type ErrorResponse struct {
	Error  string       `json:"error"`
	Fields []ErrorField `json:"fields,omitempty"`
}

func NewErrorResponse(err error, fields ...ErrorField) ErrorResponse {
	return ErrorResponse{
		Error:  err.Error(),
		Fields: fields,
	}
}

// ExtractErrorFields turns validator errors into per-field messages.
// Any other error yields no fields.
func ExtractErrorFields(err error) []ErrorField {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]ErrorField, 0, len(validationErrs))

	for _, fe := range validationErrs {
		fields = append(fields, ErrorField{
			FieldName:    fe.Field(),
			ErrorMessage: getBindingErrorMessage(fe.Tag()),
		})
	}

	return fields
}

// getBindingErrorMessage maps a validation tag to a human readable message.
func getBindingErrorMessage(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "len":
		return "invalid length"
	case "url":
		return "invalid URL format"
	case "gte":
		return "must be greater than or equal to the allowed minimum"
	case "lte":
		return "must be less than or equal to the allowed maximum"
	case "oneof":
		return "must be one of the allowed values"
	case "uuid":
		return "invalid UUID format"
	default:
		return "invalid input"
	}
}

// UseJSONFieldNames configures gin's validator to report fields by their
// json names, so error fields match the request body.
func UseJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func extractErrorFromBuffer(buf *bytes.Buffer) (*ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.NewDecoder(buf).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
