package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/proclubshub/backend/pkg/helpers"
	"github.com/proclubshub/backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth gates mutating routes behind a Bearer token.
// Missing or non-Bearer Authorization header aborts with 401; a token that
// fails signature or expiry checks aborts with 403. The request body is not
// read until this middleware has passed.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing authorization header", nil)
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			response.Error[any](c, http.StatusUnauthorized, "malformed authorization header", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(parts[1])
		if err != nil {
			response.Error[any](c, http.StatusForbidden, "invalid or expired token", err.Error())
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
