// File: internal/gate/session.go
package gate

import (
	"revert_connect_backend/internal/user"

	"github.com/gin-gonic/gin"
)

// SessionKind tells how fetching the current user turned out.
type SessionKind string

const (
	SessionAuthenticated SessionKind = "authenticated"
	SessionAnonymous     SessionKind = "anonymous"
	SessionFetchError    SessionKind = "fetch_error"
)

// Session is the result of fetching the current user for one request.
// Anonymous and FetchError are treated alike by Decide but stay distinct for logs and metrics.
type Session struct {
	Kind SessionKind
	User *user.User
	Err  error
}

// Authenticated wraps a resolved user. A nil user degrades to Anonymous.
func Authenticated(u *user.User) Session {
	if u == nil {
		return Anonymous()
	}
	return Session{Kind: SessionAuthenticated, User: u}
}

// Anonymous is a request without credentials.
func Anonymous() Session {
	return Session{Kind: SessionAnonymous}
}

// FetchError is a request whose credentials could not be turned into a user.
func FetchError(err error) Session {
	return Session{Kind: SessionFetchError, Err: err}
}

// sessionKey is the gin context key holding the request's Session.
const sessionKey = "gateSession"

// SetSession stores the session on the request and exposes its user through user.Current.
func SetSession(c *gin.Context, s Session) {
	c.Set(sessionKey, s)
	if s.Kind == SessionAuthenticated {
		user.SetCurrent(c, s.User)
	}
}

// SessionFrom returns the request's session; requests the session middleware never saw are anonymous.
func SessionFrom(c *gin.Context) Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Anonymous()
}
