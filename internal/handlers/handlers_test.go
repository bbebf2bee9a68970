package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/config"
	"taskboard-api/internal/middleware"
	"taskboard-api/internal/repository"
	"taskboard-api/internal/services"
	"taskboard-api/internal/token"
)

const (
	testEmail    = "a@b.com"
	testPassword = "Abcd1234!"
)

type testEnv struct {
	store  *repository.Store
	tokens *token.Manager
	router *gin.Engine
	auth   *services.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore()
	tokens := token.NewManager("test-secret", "http://localhost:5173", time.Hour)
	cfg := &config.Config{Env: "dev"}

	authService := services.NewAuthService(store.Users(), store.Boards(), store.Tasks(), tokens)
	boardService := services.NewBoardService(store.Boards(), store.Users(), store.Tasks())
	taskService := services.NewTaskService(store.Tasks(), store.Boards(), store.Users())

	authHandler := NewAuthHandler(authService, tokens, cfg)
	boardHandler := NewBoardHandler(boardService)
	taskHandler := NewTaskHandler(taskService)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	r := gin.New()
	r.Use(middleware.ErrorHandler(logger))

	api := r.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(tokens))
	protected.GET("/get/user/details", authHandler.GetUserDetails)
	protected.POST("/update/user", authHandler.UpdateLastVisitedBoard)
	protected.POST("/logout", authHandler.Logout)
	protected.POST("/remove/user/:userId", authHandler.RemoveUser)
	protected.POST("/boards", boardHandler.CreateBoard)
	protected.GET("/boards/:boardId", boardHandler.GetBoard)
	protected.PUT("/boards/:boardId", boardHandler.UpdateBoard)
	protected.DELETE("/boards/:boardId", boardHandler.DeleteBoard)
	protected.POST("/tasks/create", taskHandler.CreateTask)
	protected.PUT("/tasks/:taskId", taskHandler.UpdateTask)
	protected.DELETE("/tasks/:taskId", taskHandler.DeleteTask)

	return &testEnv{
		store:  store,
		tokens: tokens,
		router: r,
		auth:   authService,
	}
}

// do performs a request against the test router. A string body is sent
// verbatim; anything else is marshalled to JSON.
func (env *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signupAndLogin registers a user and returns their session cookie.
func (env *testEnv) signupAndLogin(t *testing.T, email string) *http.Cookie {
	t.Helper()

	creds := map[string]string{"email": email, "password": testPassword}
	w := env.do(t, http.MethodPost, "/api/signup", creds, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/login", creds, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == token.CookieName {
			return c
		}
	}
	t.Fatal("expected token cookie after login")
	return nil
}

// createBoard creates a board through the API and returns its id.
func (env *testEnv) createBoard(t *testing.T, cookie *http.Cookie) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/boards", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	boardID, ok := body["boardId"].(string)
	require.True(t, ok, "expected boardId in response")
	return boardID
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// requireErrorEnvelope asserts the uniform error shape and returns nothing;
// the envelope code always matches the HTTP status.
func requireErrorEnvelope(t *testing.T, w *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, false, body["success"])

	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object in envelope")
	require.Equal(t, message, errObj["message"])
	require.Equal(t, float64(status), errObj["code"])
}
