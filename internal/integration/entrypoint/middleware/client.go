// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ClientIDKey is the context key for the calling client's identifier.
	ClientIDKey ContextKey = "client_id"
)

// ClientIDHeader carries a stable per-device identifier chosen by the client.
const ClientIDHeader = "X-Client-ID"

// maxClientIDLength bounds the header value kept as a map key.
const maxClientIDLength = 64

// ClientIdentity returns a Gin middleware handler that resolves the caller's
// identity. The X-Client-ID header wins; the remote IP is used otherwise.
func ClientIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := strings.TrimSpace(c.GetHeader(ClientIDHeader))
		if len(clientID) > maxClientIDLength {
			clientID = clientID[:maxClientIDLength]
		}
		if clientID == "" {
			clientID = c.ClientIP()
		}
		if clientID == "" {
			clientID = c.Request.RemoteAddr
		}

		c.Set(string(ClientIDKey), clientID)
		c.Next()
	}
}

// GetClientIDFromContext retrieves the client ID set by ClientIdentity.
func GetClientIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(string(ClientIDKey))
	if !exists {
		return "", false
	}

	clientID, ok := value.(string)
	return clientID, ok && clientID != ""
}
