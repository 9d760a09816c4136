package response

import (
	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/domain"
)

// ErrorBody is the JSON shape of every non-2xx response.
type ErrorBody struct {
	Message   string   `json:"message"`
	Errors    []string `json:"errors,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// MessageBody is returned by endpoints that only acknowledge an action.
type MessageBody struct {
	Message string `json:"message"`
}

// Success sends the resource itself as the response body
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Message sends a {"message": ...} acknowledgement
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageBody{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, details []string) {
	c.AbortWithStatusJSON(code, ErrorBody{
		Message:   message,
		Errors:    details,
		RequestID: RequestID(c),
	})
}

// RequestID returns the id assigned by the RequestID middleware, or "".
func RequestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
