package utils

import (
	"sakila-backend/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// SuccessBody represents the success envelope
type SuccessBody struct {
	Status string      `json:"status" example:"success"`
	Data   interface{} `json:"data"`
}

// FailBody represents the failure envelope
type FailBody struct {
	Status string    `json:"status" example:"fail"`
	Error  ErrorInfo `json:"error"`
}

// ErrorInfo carries the HTTP status code and a client-safe message
type ErrorInfo struct {
	Code    int                 `json:"code" example:"404"`
	Msg     string              `json:"msg" example:"Not found actor"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// SuccessResponse sends a success response
func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(SuccessBody{
		Status: StatusSuccess,
		Data:   data,
	})
}

// ErrorResponse sends a failure response without field details
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(FailBody{
		Status: StatusFail,
		Error: ErrorInfo{
			Code: code,
			Msg:  message,
		},
	})
}

// AppErrorResponse renders an *apperr.AppError; the cause is never sent.
func AppErrorResponse(c *fiber.Ctx, err *apperr.AppError) error {
	return c.Status(err.HTTPStatus).JSON(FailBody{
		Status: StatusFail,
		Error: ErrorInfo{
			Code:    err.HTTPStatus,
			Msg:     err.Message,
			Details: err.Details,
		},
	})
}
