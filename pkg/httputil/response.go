package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/clinic-booking-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var statusByCode = map[errors.ErrorCode]int{
	errors.ErrValidation:   http.StatusBadRequest,
	errors.ErrUnauthorized: http.StatusUnauthorized,
	errors.ErrForbidden:    http.StatusForbidden,
	errors.ErrNotFound:     http.StatusNotFound,
	errors.ErrConflict:     http.StatusConflict,
	errors.ErrService:      http.StatusInternalServerError,
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithCreated sends a success response for a newly created resource
func RespondWithCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError maps an application error onto an HTTP response
func RespondWithError(c *gin.Context, err error) {
	code := errors.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()
	if code == errors.ErrService {
		message = "internal server error"
	}

	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:    string(code),
			Message: message,
		},
	})
}
