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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// InsufficientStorage reports a write the storage medium rejected.
func InsufficientStorage(c *gin.Context, code, message string) {
	Write(c, http.StatusInsufficientStorage, code, message)
}

// Business answers 400 with the error's code and message, falling back to
// the given message when the error carries none.
func Business(c *gin.Context, err error, fallback string) {
	be, ok := AsBusiness(err)
	if !ok {
		Internal(c, "internal_error", fallback)
		return
	}
	msg := be.Message
	if msg == "" {
		msg = fallback
	}
	BadRequest(c, be.Code, msg)
}
