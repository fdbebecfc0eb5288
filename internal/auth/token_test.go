package auth

import (
	"strings"
	"testing"
)

// newTestTokenService uses a fixed secret so tests are deterministic.
func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	ts, err := NewTokenService("test-secret-at-least-16-chars!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	if _, err := NewTokenService("short"); err == nil {
		t.Fatal("NewTokenService should reject a secret shorter than 16 characters")
	}
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue("42", map[string]string{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	identity, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if identity.Subject != "42" {
		t.Errorf("Subject = %q, want %q", identity.Subject, "42")
	}
	if identity.Email() != "a@x.com" {
		t.Errorf("Email() = %q, want %q", identity.Email(), "a@x.com")
	}
}

func TestIssue_EmptySubject(t *testing.T) {
	ts := newTestTokenService(t)

	if _, err := ts.Issue("", nil); err == nil {
		t.Fatal("Issue() should reject an empty subject")
	}
}

func TestIssue_IgnoresSubClaimOverride(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue("1", map[string]string{"sub": "999"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	identity, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if identity.Subject != "1" {
		t.Errorf("Subject = %q, want %q (sub claim must not be overridable)", identity.Subject, "1")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	ts := newTestTokenService(t)
	other, err := NewTokenService("a-completely-different-secret!!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := ts.Issue("42", nil)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := other.Verify(token); err == nil {
		t.Fatal("Verify() should reject a token signed with a different secret")
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	ts := newTestTokenService(t)

	token, err := ts.Issue("42", map[string]string{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	// Flip part of the payload; the signature no longer matches.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token parts, got %d", len(parts))
	}
	tampered := parts[0] + "." + "eyJzdWIiOiI5OTkifQ" + "." + parts[2]

	if _, err := ts.Verify(tampered); err == nil {
		t.Fatal("Verify() should reject a tampered token")
	}
}

func TestVerify_Malformed(t *testing.T) {
	ts := newTestTokenService(t)

	for _, tokenStr := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := ts.Verify(tokenStr); err == nil {
			t.Errorf("Verify(%q) should fail", tokenStr)
		}
	}
}
