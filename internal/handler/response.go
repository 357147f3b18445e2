package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inaaqc/clinical-api/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// statusFor maps application error codes to HTTP statuses.
func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrBadRequest:
		return http.StatusBadRequest
	case errors.ErrUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error response with the matching status code.
// Internal errors are not echoed back to the client verbatim.
func Error(c *gin.Context, err error) {
	status := statusFor(errors.CodeOf(err))
	message := err.Error()
	if status == http.StatusInternalServerError {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) {
			message = appErr.Message
		} else {
			message = "internal server error"
		}
	}
	c.JSON(status, NewErrorResponse(message))
}
