package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// ownerIDKey stores the authenticated owner's ID (the JWT subject).
const ownerIDKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying the owner ID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}

// GetOwnerIDFromContext retrieves the authenticated owner ID from the Gin context.
// It returns the owner ID and a boolean indicating if it was found.
func GetOwnerIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(ownerIDKey)); exists {
		ownerID, ok := v.(string)
		return ownerID, ok && ownerID != ""
	}
	// check in the request context as well
	ownerID, ok := c.Request.Context().Value(ownerIDKey).(string)
	return ownerID, ok && ownerID != ""
}
