// Package middleware holds the gin middleware: bearer-token authorization and
// request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"streamly-backend/pkg/auth"
	"streamly-backend/pkg/models"
	"streamly-backend/pkg/store"
)

const userContextKey = "currentUser"

// RequireUser verifies the Authorization bearer token and resolves it to a
// user record for the duration of the request. Every failure — missing header,
// invalid or expired token, or a subject with no user row — aborts with the
// same 401 so callers cannot probe which check failed.
func RequireUser(tokens *auth.TokenService, users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c)
			return
		}
		user, err := users.GetByID(userID)
		if err != nil {
			abortUnauthorized(c)
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication credentials"})
}

// CurrentUser returns the user resolved by RequireUser, or nil on routes that
// did not pass through it.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
