// Package response defines the JSON envelope shared by every API endpoint:
// {success, message?, data?, errors?}.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the canonical API response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK sends a 200 success envelope.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage sends a 200 success envelope with a message and no data.
func OKMessage(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}

// Created sends a 201 success envelope.
func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// Error sends a failure envelope with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// ValidationError sends a 400 envelope carrying per-field messages.
func ValidationError(c echo.Context, errs []string) error {
	return c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}
