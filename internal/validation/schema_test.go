package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard-api/internal/apierrors"
)

func TestAuthSchema(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantErr string
	}{
		{
			name:  "valid credentials",
			input: map[string]any{"email": "jane@example.com", "password": "Abcd1234!"},
		},
		{
			name:  "email is trimmed",
			input: map[string]any{"email": "  jane@example.com  ", "password": "Abcd1234!"},
		},
		{
			name:    "email without domain dot",
			input:   map[string]any{"email": "jane@localhost", "password": "Abcd1234!"},
			wantErr: "Please enter a valid email address.",
		},
		{
			name:    "email without at sign",
			input:   map[string]any{"email": "jane.example.com", "password": "Abcd1234!"},
			wantErr: "Please enter a valid email address.",
		},
		{
			name:    "password too short",
			input:   map[string]any{"email": "jane@example.com", "password": "Ab1!"},
			wantErr: passwordTooWeak,
		},
		{
			name:    "password without digit",
			input:   map[string]any{"email": "jane@example.com", "password": "Abcdefgh!"},
			wantErr: passwordTooWeak,
		},
		{
			name:    "password without special character",
			input:   map[string]any{"email": "jane@example.com", "password": "Abcd12345"},
			wantErr: passwordTooWeak,
		},
		{
			name:    "password without letter",
			input:   map[string]any{"email": "jane@example.com", "password": "12345678!"},
			wantErr: passwordTooWeak,
		},
		{
			name:    "password with forbidden character",
			input:   map[string]any{"email": "jane@example.com", "password": "Abcd 1234!"},
			wantErr: passwordTooWeak,
		},
		{
			name:    "both fields missing",
			input:   map[string]any{},
			wantErr: "Invalid input: expected string, received undefined, Invalid input: expected string, received undefined",
		},
		{
			name:    "email has wrong type",
			input:   map[string]any{"email": true, "password": "Abcd1234!"},
			wantErr: "Invalid input: expected string, received boolean",
		},
		{
			name:    "email is null",
			input:   map[string]any{"email": nil, "password": "Abcd1234!"},
			wantErr: "Invalid input: expected string, received null",
		},
		{
			name:    "unknown key",
			input:   map[string]any{"email": "jane@example.com", "password": "Abcd1234!", "remember": "yes"},
			wantErr: apierrors.MsgUnknownParameters,
		},
		{
			name:    "failures accumulate in field order",
			input:   map[string]any{"email": "not-an-email", "password": "short"},
			wantErr: "Please enter a valid email address., " + passwordTooWeak,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := AuthSchema.Validate(tt.input)
			if tt.wantErr != "" {
				require.NotNil(t, err)
				require.Equal(t, tt.wantErr, err.Message)
				require.Equal(t, 422, err.Code)
				return
			}
			require.Nil(t, err)
			require.Equal(t, "jane@example.com", values["email"])
			require.Equal(t, "Abcd1234!", values["password"])
		})
	}
}

func TestTaskCreateSchema_Defaults(t *testing.T) {
	values, err := TaskCreateSchema.Validate(map[string]any{
		"name":    "water the plants",
		"boardId": "6934806d5785f87b8cf40225",
	})
	require.Nil(t, err)
	require.Equal(t, "toDo", values["status"], "status defaults when omitted")
	_, hasDescription := values["description"]
	require.False(t, hasDescription)
}

func TestTaskCreateSchema_Enum(t *testing.T) {
	_, err := TaskCreateSchema.Validate(map[string]any{
		"name":    "water the plants",
		"status":  "done",
		"boardId": "6934806d5785f87b8cf40225",
	})
	require.NotNil(t, err)
	require.Equal(t, `Invalid option: expected one of "inProgress"|"completed"|"wontDo"|"toDo"`, err.Message)
}

func TestTaskUpdateSchema_RequireOne(t *testing.T) {
	_, err := TaskUpdateSchema.Validate(map[string]any{})
	require.NotNil(t, err)
	require.Equal(t, "At least one key (name, description, status, icon) must be present.", err.Message)

	// An explicit null on a nullable field satisfies the rule.
	values, err := TaskUpdateSchema.Validate(map[string]any{"icon": nil})
	require.Nil(t, err)
	require.Contains(t, values, "icon")
	require.Nil(t, values["icon"])
}

func TestBoardUpdateSchema(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]any
		wantErr string
	}{
		{
			name:  "name only",
			input: map[string]any{"name": "Groceries"},
		},
		{
			name:    "empty body",
			input:   map[string]any{},
			wantErr: "At least one key (name, description) must be present.",
		},
		{
			name:    "name too short after trimming",
			input:   map[string]any{"name": "  abc  "},
			wantErr: taskNameTooShort,
		},
		{
			name:    "description too short",
			input:   map[string]any{"description": "abc"},
			wantErr: descriptionTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BoardUpdateSchema.Validate(tt.input)
			if tt.wantErr != "" {
				require.NotNil(t, err)
				require.Equal(t, tt.wantErr, err.Message)
				return
			}
			require.Nil(t, err)
		})
	}
}

func TestValidateObjectID(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{name: "lowercase hex", raw: "6934806d5785f87b8cf40225", valid: true},
		{name: "uppercase hex", raw: "6934806D5785F87B8CF40225", valid: true},
		{name: "surrounding whitespace", raw: " 6934806d5785f87b8cf40225 ", valid: true},
		{name: "too short", raw: "6934806d5785f87b8cf4022"},
		{name: "too long", raw: "6934806d5785f87b8cf402255"},
		{name: "non-hex characters", raw: "6934806d5785f87b8cf4022z"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ValidateObjectID(tt.raw)
			if !tt.valid {
				require.NotNil(t, err)
				require.Equal(t, MsgInvalidObjectID, err.Message)
				require.Equal(t, 422, err.Code)
				return
			}
			require.Nil(t, err)
			require.Equal(t, "6934806d5785f87b8cf40225", id.Hex())
		})
	}
}
