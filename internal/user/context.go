// File: internal/user/context.go
package user

import "github.com/gin-gonic/gin"

// CurrentUserKey is the gin context key holding the authenticated *User.
const CurrentUserKey = "currentUser"

// SetCurrent stores the authenticated user on the request.
func SetCurrent(c *gin.Context, u *User) {
	c.Set(CurrentUserKey, u)
}

// Current returns the authenticated user, or nil for anonymous requests.
func Current(c *gin.Context) *User {
	val, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	u, ok := val.(*User)
	if !ok {
		return nil
	}
	return u
}
