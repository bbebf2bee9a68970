package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard-api/internal/apierrors"
)

func TestTaskHandler_CreateTask(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)

	w := env.do(t, http.MethodPost, "/api/tasks/create", map[string]string{
		"name":        "water the plants",
		"description": "balcony and kitchen",
		"boardId":     boardID,
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Equal(t, true, body["success"])

	task, ok := body["task"].(map[string]any)
	require.True(t, ok, "expected task in response")
	require.Equal(t, "water the plants", task["name"])
	require.Equal(t, "balcony and kitchen", task["description"])
	require.Equal(t, "toDo", task["status"], "status defaults to toDo")
	require.Equal(t, boardID, task["boardId"])

	// The board's task list now references the task.
	w = env.do(t, http.MethodGet, "/api/boards/"+boardID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []any{task["_id"]}, decodeBody(t, w)["tasks"])
}

func TestTaskHandler_CreateTask_UnknownBoard(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)

	w := env.do(t, http.MethodPost, "/api/tasks/create", map[string]string{
		"name":    "water the plants",
		"boardId": "6934806d5785f87b8cf40225",
	}, cookie)

	requireErrorEnvelope(t, w, http.StatusNotFound, apierrors.MsgResourceDoesNotExist)
}

func TestTaskHandler_CreateTask_Validation(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)

	tests := []struct {
		name    string
		body    any
		message string
	}{
		{
			name:    "empty body",
			body:    map[string]string{},
			message: "Invalid input: expected string, received undefined, Invalid input: expected string, received undefined",
		},
		{
			name: "invalid status",
			body: map[string]string{
				"name":    "water the plants",
				"status":  "paused",
				"boardId": boardID,
			},
			message: `Invalid option: expected one of "inProgress"|"completed"|"wontDo"|"toDo"`,
		},
		{
			name: "short name and description",
			body: map[string]string{
				"name":        "abc",
				"description": "de",
				"boardId":     boardID,
			},
			message: "Task should have at least 5 characters, Description should have at least 5 characters",
		},
		{
			name: "bad board id format",
			body: map[string]string{
				"name":    "water the plants",
				"boardId": "zzz",
			},
			message: "ObjectId passed is invalid",
		},
		{
			name: "name has wrong type",
			body: map[string]any{
				"name":    12345,
				"boardId": boardID,
			},
			message: "Invalid input: expected string, received number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/tasks/create", tt.body, cookie)
			requireErrorEnvelope(t, w, http.StatusUnprocessableEntity, tt.message)
		})
	}
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)
	taskID := env.createTask(t, cookie, boardID)

	w := env.do(t, http.MethodPut, "/api/tasks/"+taskID, map[string]string{
		"status": "completed",
	}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	task := decodeBody(t, w)["task"].(map[string]any)
	require.Equal(t, "completed", task["status"])
	require.Equal(t, "water the plants", task["name"], "unmentioned fields stay untouched")
}

func TestTaskHandler_UpdateTask_EmptyBody(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)
	taskID := env.createTask(t, cookie, boardID)

	w := env.do(t, http.MethodPut, "/api/tasks/"+taskID, map[string]string{}, cookie)
	requireErrorEnvelope(t, w, http.StatusUnprocessableEntity,
		"At least one key (name, description, status, icon) must be present.")
}

func TestTaskHandler_UpdateTask_NullIconCountsAsPresent(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)
	taskID := env.createTask(t, cookie, boardID)

	// An explicit null satisfies the at-least-one-key rule and clears the icon.
	w := env.do(t, http.MethodPut, "/api/tasks/"+taskID, map[string]any{"icon": nil}, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	task := decodeBody(t, w)["task"].(map[string]any)
	_, hasIcon := task["icon"]
	require.False(t, hasIcon, "icon should be cleared")
}

func TestTaskHandler_UpdateTask_NotFound(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)

	w := env.do(t, http.MethodPut, "/api/tasks/6934806d5785f87b8cf40225", map[string]string{
		"status": "completed",
	}, cookie)
	requireErrorEnvelope(t, w, http.StatusNotFound, apierrors.MsgResourceDoesNotExist)
}

func TestTaskHandler_UpdateTask_ForeignTask(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)
	taskID := env.createTask(t, cookie, boardID)

	otherCookie := env.signupAndLogin(t, "other@example.com")

	w := env.do(t, http.MethodPut, "/api/tasks/"+taskID, map[string]string{
		"status": "completed",
	}, otherCookie)
	requireErrorEnvelope(t, w, http.StatusNotFound, apierrors.MsgResourceDoesNotExist)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	env := setupTestEnv(t)
	cookie := env.signupAndLogin(t, testEmail)
	boardID := env.createBoard(t, cookie)
	taskID := env.createTask(t, cookie, boardID)

	w := env.do(t, http.MethodDelete, "/api/tasks/"+taskID, nil, cookie)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Task with ID "+taskID+" deleted successfully", decodeBody(t, w)["message"])

	// The board no longer references the task.
	w = env.do(t, http.MethodGet, "/api/boards/"+boardID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []any{}, decodeBody(t, w)["tasks"])

	w = env.do(t, http.MethodDelete, "/api/tasks/"+taskID, nil, cookie)
	requireErrorEnvelope(t, w, http.StatusNotFound, apierrors.MsgResourceDoesNotExist)
}

// createTask creates a task through the API and returns its id.
func (env *testEnv) createTask(t *testing.T, cookie *http.Cookie, boardID string) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/tasks/create", map[string]string{
		"name":    "water the plants",
		"boardId": boardID,
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	task, ok := decodeBody(t, w)["task"].(map[string]any)
	require.True(t, ok, "expected task in response")
	return task["_id"].(string)
}
