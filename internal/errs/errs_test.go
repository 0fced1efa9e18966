package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewBadRequestError(t *testing.T) {
	err := NewBadRequestError("Validation failed", true, nil, []FieldError{{Field: "username", Error: "is required"}})

	if err.Status != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", err.Status)
	}
	if err.Code != "BAD_REQUEST" {
		t.Fatalf("want code BAD_REQUEST, got %q", err.Code)
	}
	if !err.Override {
		t.Fatal("override flag must be preserved")
	}
	if len(err.Errors) != 1 {
		t.Fatalf("want 1 field error, got %d", len(err.Errors))
	}
}

func TestNewBadRequestErrorCustomCode(t *testing.T) {
	code := "USER_ALREADY_EXISTS"
	err := NewBadRequestError("duplicate", false, &code, nil)
	if err.Code != "USER_ALREADY_EXISTS" {
		t.Fatalf("custom code must win, got %q", err.Code)
	}
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	err := NewNotFoundError("gone", false, nil)
	wrapped := NewInternalServerError()

	if !errors.Is(err, wrapped) {
		t.Fatal("errors.Is must match any *HTTPError")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Fatal("errors.Is must not match other error types")
	}
}

func TestWithMessage(t *testing.T) {
	original := NewNotFoundError("original", true, nil)
	modified := original.WithMessage("replaced")

	if modified.Message != "replaced" {
		t.Fatalf("want replaced message, got %q", modified.Message)
	}
	if modified.Status != original.Status || modified.Override != original.Override {
		t.Fatal("other fields must be preserved")
	}
	if original.Message != "original" {
		t.Fatal("original must not be mutated")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	cases := map[string]string{
		"Bad Request":           "BAD_REQUEST",
		"Not Found":             "NOT_FOUND",
		"Internal Server Error": "INTERNAL_SERVER_ERROR",
	}
	for in, want := range cases {
		if got := MakeUpperCaseWithUnderscores(in); got != want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", in, got, want)
		}
	}
}
