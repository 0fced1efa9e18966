package sqlerr

import (
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/fitrack/exercise-tracker/internal/errs"
)

func TestMapCode(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     Code
	}{
		{"23505", UniqueViolation},
		{"23503", ForeignKeyViolation},
		{"23502", NotNullViolation},
		{"23514", CheckViolation},
		{"22P02", InvalidTextRepresentation},
		{"42601", Other},
		{"", Other},
	}

	for _, tc := range cases {
		if got := MapCode(tc.sqlstate); got != tc.want {
			t.Errorf("MapCode(%q) = %v, want %v", tc.sqlstate, got, tc.want)
		}
	}
}

func TestConvertPgErrorWrapsDriverError(t *testing.T) {
	src := &pgconn.PgError{Code: "23505", Severity: "ERROR", Message: "duplicate key"}
	converted := ConvertPgError(src)

	if converted.Code != UniqueViolation || converted.Severity != SeverityError {
		t.Fatalf("unexpected conversion: %+v", converted)
	}

	var pgErr *pgconn.PgError
	if !errors.As(converted, &pgErr) {
		t.Fatal("converted error must unwrap to the driver error")
	}
}

func TestHandleErrorPassesThroughHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Resource not found", false, nil)
	if got := HandleError(original); got != original {
		t.Fatalf("HTTPError must pass through unchanged, got %v", got)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	got := HandleError(pgx.ErrNoRows)

	var httpErr *errs.HTTPError
	if !errors.As(got, &httpErr) {
		t.Fatalf("want *errs.HTTPError, got %T", got)
	}
	if httpErr.Status != http.StatusNotFound || httpErr.Message != "Resource not found" {
		t.Fatalf("unexpected error %+v", httpErr)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	got := HandleError(&pgconn.PgError{
		Code:           "23514",
		TableName:      "exercises",
		ConstraintName: "exercises_duration_check",
	})

	var httpErr *errs.HTTPError
	if !errors.As(got, &httpErr) {
		t.Fatalf("want *errs.HTTPError, got %T", got)
	}
	if httpErr.Status != http.StatusBadRequest || !httpErr.Override {
		t.Fatalf("unexpected error %+v", httpErr)
	}
	if httpErr.Code != "EXERCISE_INVALID" {
		t.Fatalf("want code EXERCISE_INVALID, got %q", httpErr.Code)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	got := HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "users",
		ColumnName: "username",
	})

	var httpErr *errs.HTTPError
	if !errors.As(got, &httpErr) {
		t.Fatalf("want *errs.HTTPError, got %T", got)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "USER_REQUIRED" {
		t.Fatalf("want code USER_REQUIRED, got %q", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "username" {
		t.Fatalf("unexpected field errors %+v", httpErr.Errors)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	got := HandleError(&pgconn.PgError{
		Code:       "23503",
		TableName:  "logs",
		ColumnName: "user_id",
	})

	var httpErr *errs.HTTPError
	if !errors.As(got, &httpErr) {
		t.Fatalf("want *errs.HTTPError, got %T", got)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", httpErr.Status)
	}
	if httpErr.Message != "The referenced User does not exist" {
		t.Fatalf("unexpected message %q", httpErr.Message)
	}
}

func TestHandleErrorUnknownBecomes500(t *testing.T) {
	got := HandleError(errors.New("connection refused"))

	var httpErr *errs.HTTPError
	if !errors.As(got, &httpErr) {
		t.Fatalf("want *errs.HTTPError, got %T", got)
	}
	if httpErr.Status != http.StatusInternalServerError {
		t.Fatalf("want 500, got %d", httpErr.Status)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	cases := []struct {
		table string
		code  Code
		want  string
	}{
		{"users", UniqueViolation, "USER_ALREADY_EXISTS"},
		{"exercises", CheckViolation, "EXERCISE_INVALID"},
		{"logs", ForeignKeyViolation, "LOG_NOT_FOUND"},
		{"", NotNullViolation, "RECORD_REQUIRED"},
	}

	for _, tc := range cases {
		if got := generateErrorCode(tc.table, tc.code); got != tc.want {
			t.Errorf("generateErrorCode(%q, %v) = %q, want %q", tc.table, tc.code, got, tc.want)
		}
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := []struct {
		constraint string
		want       string
	}{
		{"users_username_key", "username"},
		{"unique_users_username", "username"},
		{"", ""},
		{"users_pkey", ""},
	}

	for _, tc := range cases {
		if got := extractColumnForUniqueViolation(tc.constraint); got != tc.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tc.constraint, got, tc.want)
		}
	}
}
