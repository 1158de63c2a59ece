package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response wrapper every endpoint emits. The body
// code is carried separately from the HTTP status because two endpoints
// intentionally disagree (login failure, logout).
type Envelope struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func RespondSuccess(c *gin.Context, httpStatus, code int, data interface{}) {
	c.JSON(httpStatus, Envelope{
		Status: "success",
		Code:   code,
		Data:   data,
	})
}

func RespondError(c *gin.Context, httpStatus, code int, message string, data interface{}) {
	c.JSON(httpStatus, Envelope{
		Status:  "error",
		Code:    code,
		Data:    data,
		Message: message,
	})
}

// RespondUpstreamError is the catch-all boundary for collaborator failures.
func RespondUpstreamError(c *gin.Context, err error) {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": msg})
}
