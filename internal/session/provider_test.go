package session

import (
	"context"
	"errors"
	"testing"
)

func TestProviderLoginLogout(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(NewMemoryStore())

	id, err := p.Login(ctx, "tok-abc", "admin")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if id == "" {
		t.Fatal("Login returned empty session id")
	}

	s, err := p.Session(ctx, id)
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if s.Token != "tok-abc" || s.UserType != "admin" {
		t.Errorf("Session = %+v", s)
	}

	if err := p.Logout(ctx, id); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := p.Session(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Session after logout: err = %v, want ErrNotFound", err)
	}
}

func TestProviderDistinctSessionIDs(t *testing.T) {
	ctx := context.Background()
	p := NewProvider(NewMemoryStore())

	a, _ := p.Login(ctx, "tok-a", "journalist")
	b, _ := p.Login(ctx, "tok-b", "technicalDirector")
	if a == b {
		t.Fatal("two logins produced the same session id")
	}

	sa, _ := p.Session(ctx, a)
	sb, _ := p.Session(ctx, b)
	if sa.UserType != "journalist" || sb.UserType != "technicalDirector" {
		t.Errorf("sessions mixed up: a=%+v b=%+v", sa, sb)
	}
}

func TestContextTokens(t *testing.T) {
	tokens := ContextTokens{}

	if tok, ok := tokens.Token(context.Background()); ok || tok != "" {
		t.Errorf("Token on bare context = %q, %v", tok, ok)
	}

	ctx := NewContext(context.Background(), Session{Token: "tok-xyz", UserType: "admin"})
	tok, ok := tokens.Token(ctx)
	if !ok || tok != "tok-xyz" {
		t.Errorf("Token = %q, %v, want tok-xyz, true", tok, ok)
	}

	// A session without a token (should not happen, but) yields no auth.
	empty := NewContext(context.Background(), Session{UserType: "admin"})
	if _, ok := tokens.Token(empty); ok {
		t.Error("Token reported ok for empty token")
	}
}
