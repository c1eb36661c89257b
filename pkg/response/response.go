package response

import (
	"encoding/json"
	"io"
)

// Response is the envelope every command prints.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Total int `json:"total"`
}

func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func Success(w io.Writer, message string, data interface{}) error {
	return JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w io.Writer, message string, data interface{}, meta *Meta) error {
	return JSON(w, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w io.Writer, message string, err interface{}) error {
	return JSON(w, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w io.Writer, errors interface{}) error {
	return Error(w, "Validation failed", errors)
}

func Unauthorized(w io.Writer, message string) error {
	if message == "" {
		message = "Not logged in"
	}
	return Error(w, message, nil)
}

func NotFound(w io.Writer, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return Error(w, message, nil)
}

func InternalError(w io.Writer, message string) error {
	if message == "" {
		message = "Internal error"
	}
	return Error(w, message, nil)
}
