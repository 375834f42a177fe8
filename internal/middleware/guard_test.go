package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/medicore/hospital-api/internal/model"
)

type staticSession struct {
	sess model.Session
}

func (s staticSession) Snapshot() model.Session { return s.sess }

func testUser(role model.Role) *model.User {
	u := &model.User{Role: role}
	u.ID = uuid.New()
	return u
}

func authenticated(role model.Role) model.Session {
	return model.Session{
		User:            testUser(role),
		Token:           "token",
		IsAuthenticated: true,
	}
}

func TestEvaluateGuard_Precedence(t *testing.T) {
	staffOnly := model.NewRoleSet(model.RoleAdmin)

	tests := []struct {
		name     string
		session  model.Session
		required model.RoleSet
		want     GuardDecision
	}{
		{
			name:     "loading wins over everything",
			session:  model.Session{IsLoading: true},
			required: staffOnly,
			want:     DecisionPending,
		},
		{
			name: "loading wins even when authenticated",
			session: model.Session{
				User:            testUser(model.RoleAdmin),
				Token:           "token",
				IsAuthenticated: true,
				IsLoading:       true,
			},
			required: staffOnly,
			want:     DecisionPending,
		},
		{
			name:     "empty session is unauthenticated",
			session:  model.Session{},
			required: staffOnly,
			want:     DecisionUnauthenticated,
		},
		{
			name:     "wrong role is unauthorized, not unauthenticated",
			session:  authenticated(model.RoleNurse),
			required: staffOnly,
			want:     DecisionUnauthorized,
		},
		{
			name:     "member role is authorized",
			session:  authenticated(model.RoleAdmin),
			required: staffOnly,
			want:     DecisionAuthorized,
		},
		{
			name:     "empty required set admits any authenticated role",
			session:  authenticated(model.RoleReceptionist),
			required: nil,
			want:     DecisionAuthorized,
		},
		{
			name:     "empty required set still rejects anonymous",
			session:  model.Session{},
			required: nil,
			want:     DecisionUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateGuard(tt.session, tt.required))
		})
	}
}

func guardedRouter(sess model.Session, required model.RoleSet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	guard := NewGuard(staticSession{sess: sess})
	r.GET("/protected", guard.Protect(required), func(c *gin.Context) {
		c.String(http.StatusOK, "content")
	})
	return r
}

func TestProtect_UnauthorizedRoleRedirectsToDefault(t *testing.T) {
	// A nurse requesting an admin-only area lands on the default page,
	// with no hint the area exists.
	r := guardedRouter(authenticated(model.RoleNurse), model.NewRoleSet(model.RoleAdmin))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, DefaultPath, w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "content")
}

func TestProtect_AnonymousRedirectsToLogin(t *testing.T) {
	r := guardedRouter(model.Session{}, model.NewRoleSet(model.RoleAdmin, model.RoleNurse))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestProtect_PendingHoldsWithoutRedirect(t *testing.T) {
	r := guardedRouter(model.Session{IsLoading: true}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestProtect_AuthorizedSetsContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sess := authenticated(model.RoleDoctor)

	r := gin.New()
	guard := NewGuard(staticSession{sess: sess})
	r.GET("/protected", guard.Protect(model.NewRoleSet(model.RoleDoctor)), func(c *gin.Context) {
		user := c.MustGet(ContextUser).(*model.User)
		assert.Equal(t, sess.User.ID, user.ID)
		assert.Equal(t, model.RoleDoctor, c.MustGet(ContextUserRole))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
