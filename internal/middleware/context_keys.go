package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// requestMetaKey carries client metadata captured for audit entries.
const requestMetaKey = contextKey("requestMeta")

// RequestMeta holds client details captured once per request, used when
// appending audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// RequestMetaMiddleware captures the client IP and user agent into the
// request context so services can attach them to audit entries.
func RequestMetaMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		meta := RequestMeta{
			IPAddress: c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		c.Request = c.Request.WithContext(WithRequestMeta(c.Request.Context(), meta))
		c.Next()
	}
}

// WithRequestMeta returns a context carrying the given client metadata.
func WithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey, meta)
}

// GetRequestMetaFromCtx retrieves the captured client metadata, if any.
func GetRequestMetaFromCtx(ctx context.Context) (RequestMeta, bool) {
	meta, ok := ctx.Value(requestMetaKey).(RequestMeta)
	return meta, ok
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}
