package session

import (
	"context"

	"github.com/google/uuid"
)

// Provider is the explicit auth dependency handed to the HTTP gateway and
// the route guards at construction time. It is plain state over a Store;
// there is no module-global instance.
type Provider struct {
	store Store
}

func NewProvider(store Store) *Provider {
	return &Provider{store: store}
}

// Login persists the token and role under a fresh session id and returns
// the id for the browser cookie.
func (p *Provider) Login(ctx context.Context, token, userType string) (string, error) {
	id := uuid.NewString()
	if err := p.store.Save(ctx, id, Session{Token: token, UserType: userType}); err != nil {
		return "", err
	}
	return id, nil
}

// Logout clears the persisted state for the session id.
func (p *Provider) Logout(ctx context.Context, id string) error {
	return p.store.Delete(ctx, id)
}

// Session loads the auth state for a session id.
func (p *Provider) Session(ctx context.Context, id string) (Session, error) {
	return p.store.Load(ctx, id)
}

type ctxKey struct{}

// NewContext stashes the resolved session in the request context so the
// gateway can attach the bearer token downstream.
func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the session placed by the auth middleware.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}

// ContextTokens adapts the request context to the gateway's TokenSource.
type ContextTokens struct{}

func (ContextTokens) Token(ctx context.Context) (string, bool) {
	s, ok := FromContext(ctx)
	if !ok || s.Token == "" {
		return "", false
	}
	return s.Token, true
}
