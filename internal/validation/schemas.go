package validation

import (
	"regexp"

	"taskboard-api/internal/models"
)

const (
	minNameLength = 5

	taskNameTooShort    = "Task should have at least 5 characters"
	descriptionTooShort = "Description should have at least 5 characters"
	passwordTooWeak     = "Password should have minimum eight characters, at least one letter, one number and one special character"
)

var (
	passwordLetter  = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit   = regexp.MustCompile(`\d`)
	passwordSpecial = regexp.MustCompile(`[@$!%*#?&]`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{8,}$`)
)

func isStrongPassword(s string) bool {
	return passwordCharset.MatchString(s) &&
		passwordLetter.MatchString(s) &&
		passwordDigit.MatchString(s) &&
		passwordSpecial.MatchString(s)
}

// AuthSchema validates signup and login bodies.
var AuthSchema = Schema{
	Fields: []Field{
		{Name: "email", Kind: String, Required: true, Email: true},
		{Name: "password", Kind: String, Required: true, Check: isStrongPassword, CheckMessage: passwordTooWeak},
	},
}

// BoardUpdateSchema validates PUT /boards/:boardId bodies.
var BoardUpdateSchema = Schema{
	Fields: []Field{
		{Name: "name", Kind: String, Min: minNameLength, MinMessage: taskNameTooShort},
		{Name: "description", Kind: String, Min: minNameLength, MinMessage: descriptionTooShort},
	},
	RequireOne: true,
}

// TaskCreateSchema validates POST /tasks/create bodies.
var TaskCreateSchema = Schema{
	Fields: []Field{
		{Name: "name", Kind: String, Required: true, Min: minNameLength, MinMessage: taskNameTooShort},
		{Name: "description", Kind: String, Min: minNameLength, MinMessage: descriptionTooShort},
		{Name: "status", Kind: Enum, Enum: models.TaskStatusValues(), Default: string(models.TaskStatusToDo)},
		{Name: "icon", Kind: String, Nullable: true},
		{Name: "boardId", Kind: ObjectID, Required: true},
	},
}

// TaskUpdateSchema validates PUT /tasks/:taskId bodies.
var TaskUpdateSchema = Schema{
	Fields: []Field{
		{Name: "name", Kind: String, Min: minNameLength, MinMessage: taskNameTooShort},
		{Name: "description", Kind: String, Min: minNameLength, MinMessage: descriptionTooShort},
		{Name: "status", Kind: Enum, Enum: models.TaskStatusValues()},
		{Name: "icon", Kind: String, Nullable: true},
	},
	RequireOne: true,
}

// UpdateUserSchema validates POST /update/user bodies.
var UpdateUserSchema = Schema{
	Fields: []Field{
		{Name: "boardId", Kind: ObjectID, Required: true},
	},
}
