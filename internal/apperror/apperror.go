package apperror

import "github.com/gofiber/fiber/v2"

// AppError is the error type services return for expected failures.
// Anything else reaching the error handler is treated as internal.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(message string) *AppError {
	return New(fiber.StatusBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *AppError {
	return New(fiber.StatusConflict, message)
}

func Unauthorized(message string) *AppError {
	return New(fiber.StatusUnauthorized, message)
}

func Internal() *AppError {
	return New(fiber.StatusInternalServerError, "internal server error")
}
