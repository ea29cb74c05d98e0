package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with success=true and the given payload fields
// merged at the top level.
func OK(c *gin.Context, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes a logical failure. The API contract keeps HTTP 200 for
// validation, authorization and state-conflict outcomes; clients branch on
// the success flag, not the status code.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": false,
		"message": message,
	})
}

// Error writes a non-200 failure, used for transport-level conditions
// (bad JSON, missing auth, unexpected server errors).
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"message": message,
	})
}
