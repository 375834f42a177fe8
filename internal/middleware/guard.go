package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medicore/hospital-api/internal/model"
)

// Guard route targets
const (
	LoginPath   = "/login"
	DefaultPath = "/dashboard"
)

// Context keys set by the guard for downstream handlers
const (
	ContextUser     = "user"
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
)

// GuardDecision is the outcome of evaluating a guarded route against the
// current session.
type GuardDecision int

const (
	// DecisionPending: a login is in flight; hold, never redirect.
	DecisionPending GuardDecision = iota
	// DecisionUnauthenticated: no valid session; send to the login entry point.
	DecisionUnauthenticated
	// DecisionUnauthorized: authenticated but the role is not in the route's
	// set; send to the default landing page, silently.
	DecisionUnauthorized
	// DecisionAuthorized: render the protected content.
	DecisionAuthorized
)

func (d GuardDecision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionUnauthorized:
		return "unauthorized"
	case DecisionAuthorized:
		return "authorized"
	}
	return "unknown"
}

// EvaluateGuard is the pure authorization decision. Precedence is fixed:
// loading is checked before authentication, authentication before role
// membership. A route with an empty required set only enforces
// authentication. Evaluated fresh on every request; never cached across
// session transitions.
func EvaluateGuard(sess model.Session, required model.RoleSet) GuardDecision {
	if sess.IsLoading {
		return DecisionPending
	}
	if !sess.IsAuthenticated || sess.User == nil {
		return DecisionUnauthenticated
	}
	if len(required) > 0 && !required.Contains(sess.User.Role) {
		return DecisionUnauthorized
	}
	return DecisionAuthorized
}

// SessionSource provides the current session snapshot.
type SessionSource interface {
	Snapshot() model.Session
}

// Guard wraps protected routes with the per-request authorization decision.
type Guard struct {
	sessions SessionSource
}

func NewGuard(sessions SessionSource) *Guard {
	return &Guard{sessions: sessions}
}

// Protect gates a route on the given role set. An empty set admits any
// authenticated role.
func (g *Guard) Protect(required model.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := g.sessions.Snapshot()

		switch EvaluateGuard(sess, required) {
		case DecisionPending:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status": "pending",
			})
		case DecisionUnauthenticated:
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
		case DecisionUnauthorized:
			// Silent redirect: restricted areas are not revealed to roles
			// outside their set.
			c.Redirect(http.StatusSeeOther, DefaultPath)
			c.Abort()
		case DecisionAuthorized:
			c.Set(ContextUser, sess.User)
			c.Set(ContextUserID, sess.User.ID.String())
			c.Set(ContextUserRole, sess.User.Role)
			c.Next()
		}
	}
}
