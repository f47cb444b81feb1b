package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys written at login.
const (
	SessionUserID   = "user_id"
	SessionUsername = "username"
	SessionRole     = "role"
)

// PrincipalKey is the gin context key carrying the authenticated admin.
const PrincipalKey = "principal"

// Principal is the request-scoped identity set by AdminRequired; handlers
// read it from the context instead of touching session state themselves.
type Principal struct {
	UserID   uint
	Username string
	Role     string
}

// GetPrincipal returns the authenticated principal for the request, if any.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// AdminRequired rejects the request before any handler (and so before any
// store access) unless the session asserts the admin role.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get(SessionRole).(string)
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized. Admin login required.",
			})
			return
		}

		userID, _ := session.Get(SessionUserID).(uint)
		username, _ := session.Get(SessionUsername).(string)
		c.Set(PrincipalKey, Principal{UserID: userID, Username: username, Role: role})
		c.Next()
	}
}
