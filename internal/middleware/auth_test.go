package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/apierrors"
	"taskboard-api/internal/token"
)

func authTestRouter(t *testing.T, tokens *token.Manager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/protected", RequireAuth(tokens), func(c *gin.Context) {
		session, ok := GetSession(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userId": session.UserID})
	})
	return router
}

func doProtected(router *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("test-secret", "http://localhost:5173", time.Hour)
	router := authTestRouter(t, tokens)

	raw, err := tokens.Issue("6934806d5785f87b8cf40225")
	require.NoError(t, err)

	w := doProtected(router, &http.Cookie{Name: token.CookieName, Value: raw})
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "6934806d5785f87b8cf40225")
}

func TestRequireAuth_NoCookie(t *testing.T) {
	tokens := token.NewManager("test-secret", "http://localhost:5173", time.Hour)
	router := authTestRouter(t, tokens)

	w := doProtected(router, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), apierrors.MsgAuthenticationFailed)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	tokens := token.NewManager("test-secret", "http://localhost:5173", time.Hour)
	expired := token.NewManager("test-secret", "http://localhost:5173", -time.Minute)
	router := authTestRouter(t, tokens)

	raw, err := expired.Issue("6934806d5785f87b8cf40225")
	require.NoError(t, err)

	w := doProtected(router, &http.Cookie{Name: token.CookieName, Value: raw})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), apierrors.MsgTokenExpired)
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	tokens := token.NewManager("test-secret", "http://localhost:5173", time.Hour)
	forged := token.NewManager("other-secret", "http://localhost:5173", time.Hour)
	router := authTestRouter(t, tokens)

	raw, err := forged.Issue("6934806d5785f87b8cf40225")
	require.NoError(t, err)

	// Signature failures are not a client-input problem; they surface as a
	// server-side failure rather than a 401.
	w := doProtected(router, &http.Cookie{Name: token.CookieName, Value: raw})
	require.Equal(t, http.StatusInternalServerError, w.Code)
}
