package handler

import "github.com/go-playground/validator/v10"

// validate runs the struct-tag rules on request payloads.
var validate = validator.New()

// Exact error messages for the domain not-found cases. These travel in a
// 200 response body, which is the wire contract this API preserves.
const (
	msgUserNotFound = "No user found with the specified user ID."
	msgLogNotFound  = "No log found for the specified user ID."
)

// errorResponse is the body for domain not-found cases.
type errorResponse struct {
	Error string `json:"error"`
}

// CreateUserRequest is the payload for POST /api/users.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// ListUsersRequest is the (empty) payload for GET /api/users.
type ListUsersRequest struct{}

func (r *ListUsersRequest) Validate() error {
	return nil
}

// LogExerciseRequest is the payload for POST /api/users/:id/exercises.
// Date is optional; an unparseable value falls back to the current date
// rather than failing validation, matching the tracker's contract.
type LogExerciseRequest struct {
	ID          string `param:"id" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Duration    int    `form:"duration" json:"duration" validate:"required,gt=0"`
	Date        string `form:"date" json:"date"`
}

func (r *LogExerciseRequest) Validate() error {
	return validate.Struct(r)
}

// GetLogsRequest is the payload for GET /api/users/:id/logs.
type GetLogsRequest struct {
	ID    string `param:"id" validate:"required"`
	From  string `query:"from"`
	To    string `query:"to"`
	Limit int    `query:"limit"`
}

func (r *GetLogsRequest) Validate() error {
	return validate.Struct(r)
}
