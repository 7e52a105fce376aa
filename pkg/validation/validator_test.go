package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type registerProbe struct {
	Username   string `json:"username" binding:"required,min=3"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Provider   string `json:"provider" binding:"isdefault"`
	ProviderID string `json:"providerId" binding:"isdefault"`
}

func validate(t *testing.T, probe registerProbe) []FieldError {
	t.Helper()
	Init()
	err := binding.Validator.ValidateStruct(probe)
	return ToFieldErrors(err)
}

func messageIn(details []FieldError, field string) (string, bool) {
	for _, d := range details {
		if msg, ok := d[field]; ok {
			return msg, true
		}
	}
	return "", false
}

func TestToFieldErrorsRequired(t *testing.T) {
	details := validate(t, registerProbe{})
	if len(details) != 3 {
		t.Fatalf("expected 3 violated fields, got %d: %v", len(details), details)
	}
	want := map[string]string{
		"username": "Username is required",
		"email":    "Email is required",
		"password": "Password is required",
	}
	for field, msg := range want {
		got, ok := messageIn(details, field)
		if !ok {
			t.Errorf("missing entry for %q", field)
			continue
		}
		if got != msg {
			t.Errorf("%s: expected %q, got %q", field, msg, got)
		}
	}
}

func TestToFieldErrorsMinLengths(t *testing.T) {
	details := validate(t, registerProbe{Username: "ab", Email: "a@b.com", Password: "12345"})
	if msg, _ := messageIn(details, "username"); msg != "Username must be at least 3 characters long" {
		t.Errorf("unexpected username message: %q", msg)
	}
	if msg, _ := messageIn(details, "password"); msg != "Password must be at least 6 characters long" {
		t.Errorf("unexpected password message: %q", msg)
	}
}

func TestToFieldErrorsEmailFormat(t *testing.T) {
	details := validate(t, registerProbe{Username: "alice", Email: "not-an-email", Password: "secret1"})
	if len(details) != 1 {
		t.Fatalf("expected 1 violated field, got %d: %v", len(details), details)
	}
	if msg, _ := messageIn(details, "email"); msg != "Email format is invalid" {
		t.Errorf("unexpected email message: %q", msg)
	}
}

func TestToFieldErrorsForbiddenFields(t *testing.T) {
	details := validate(t, registerProbe{Username: "alice", Email: "a@b.com", Password: "secret1", Provider: "google", ProviderID: "123"})
	if msg, _ := messageIn(details, "provider"); msg != "Provider must not be provided" {
		t.Errorf("unexpected provider message: %q", msg)
	}
	if msg, _ := messageIn(details, "providerId"); msg != "ProviderId must not be provided" {
		t.Errorf("unexpected providerId message: %q", msg)
	}
}

func TestToFieldErrorsValidPayload(t *testing.T) {
	if details := validate(t, registerProbe{Username: "alice", Email: "a@b.com", Password: "secret1"}); details != nil {
		t.Errorf("expected no errors for a valid payload, got %v", details)
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  alice  ", "alice"},
		{"<script>x</script>", "&lt;script&gt;x&lt;/script&gt;"},
		{"a & b", "a &amp; b"},
		{"plain", "plain"},
	}
	for _, c := range cases {
		if got := Sanitize(c.in); got != c.want {
			t.Errorf("Sanitize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
