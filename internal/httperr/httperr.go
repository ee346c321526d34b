package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a business error code to its HTTP status.
func WriteBusiness(c *gin.Context, err error, message string) {
	var be BusinessError
	code := "internal_error"
	status := http.StatusInternalServerError

	if ok := asBusiness(err, &be); ok {
		code = be.Code
		switch be.Code {
		case CodeSlotConflict:
			status = http.StatusConflict
		case CodeNotFound:
			status = http.StatusNotFound
		case CodeAvailabilityCheck:
			status = http.StatusServiceUnavailable
		default:
			status = http.StatusBadRequest
		}
	}

	Write(c, status, code, message)
}
