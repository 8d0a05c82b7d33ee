package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/classboard/classboard-api/pkg/errors"
)

// MessageBody is the body for operations that only acknowledge completion,
// such as class deletion. The message is shown to the user verbatim.
type MessageBody struct {
	Message string `json:"message"`
}

// JSON sends a success payload. Dashboard clients consume bodies directly,
// so payloads are not wrapped in an envelope.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Message responds with a bare acknowledgement body.
func Message(c *gin.Context, status int, message string) {
	JSON(c, status, MessageBody{Message: message})
}

// Error sends an error response. The serialized Error carries a top-level
// "message" field which clients surface to the user as-is.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, appErr)
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
