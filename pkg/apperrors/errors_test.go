package apperrors

import (
	"errors"
	"net/http"
	"testing"
)

func TestValidationError(t *testing.T) {
	details := []map[string]string{{"email": "Email is required"}}
	err := Validation(details)
	if err.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", err.Status)
	}
	if err.Message != "Validation failed" {
		t.Errorf("unexpected message: %q", err.Message)
	}
	if err.Details == nil {
		t.Error("expected details to be carried")
	}
}

func TestConflictError(t *testing.T) {
	err := Conflict("already exists")
	if err.Status != http.StatusConflict {
		t.Errorf("expected 409, got %d", err.Status)
	}
	if err.Error() != "already exists" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("", cause)
	if err.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.Status)
	}
	if err.Message != "Internal server error" {
		t.Errorf("unexpected default message: %q", err.Message)
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}
