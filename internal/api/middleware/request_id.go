package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an ID, reusing a well-formed inbound one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID extracts the request ID from context
func GetRequestID(c *gin.Context) (string, error) {
	value, exists := c.Get(requestIDKey)
	if !exists {
		return "", ErrRequestIDNotFound
	}

	id, ok := value.(string)
	if !ok {
		return "", ErrInvalidRequestID
	}

	return id, nil
}

var (
	ErrRequestIDNotFound = &ContextError{message: "request ID not found in context"}
	ErrInvalidRequestID  = &ContextError{message: "invalid request ID in context"}
)

// ContextError represents a missing or malformed request-scoped value
type ContextError struct {
	message string
}

func (e *ContextError) Error() string {
	return e.message
}
