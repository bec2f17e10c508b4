package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/chateaupet/petshop-api/internal/config"
	"github.com/chateaupet/petshop-api/internal/models"
	"github.com/chateaupet/petshop-api/internal/session"
)

const testSecret = "test-secret"

func testConfig() *config.Config {
	return &config.Config{JWTSecret: testSecret}
}

func signToken(t *testing.T, role, jti string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-123",
		"role": role,
		"jti":  jti,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return signed
}

func newProtectedRouter(denylist session.Denylist, adminOnly bool) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()

	group := r.Group("/")
	group.Use(AuthMiddleware(testConfig(), denylist))
	if adminOnly {
		group.Use(RequireAdmin(denylist))
	}
	group.GET("/protegido", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, &reached
}

func TestAuthMiddleware_NoTokenBlocksBeforeHandler(t *testing.T) {
	r, reached := newProtectedRouter(session.NewMemoryDenylist(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthMiddleware_GarbageTokenRejected(t *testing.T) {
	r, reached := newProtectedRouter(session.NewMemoryDenylist(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	r, reached := newProtectedRouter(session.NewMemoryDenylist(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleCustomer, "jti-ok"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestRequireAdmin_CustomerIsRevokedAndForbidden(t *testing.T) {
	denylist := session.NewMemoryDenylist()
	r, reached := newProtectedRouter(denylist, true)

	token := signToken(t, models.RoleCustomer, "jti-cliente")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, *reached)

	// A sessão foi revogada: o mesmo token agora falha já na autenticação.
	revoked, err := denylist.IsRevoked(req.Context(), "jti-cliente")
	assert.NoError(t, err)
	assert.True(t, revoked)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	r, reached := newProtectedRouter(session.NewMemoryDenylist(), true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, models.RoleAdmin, "jti-admin"))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}
