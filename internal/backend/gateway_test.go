package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token(ctx context.Context) (string, bool) {
	return s.token, s.token != ""
}

func TestGatewayAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, staticTokens{token: "tok-123"})
	var out map[string]any
	if err := gw.GetJSON(context.Background(), "/seasons", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestGatewayOmitsAuthWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, staticTokens{})
	var out map[string]any
	if err := gw.GetJSON(context.Background(), "/teams", &out); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestGatewaySessionExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, staticTokens{token: "stale"})
	fired := 0
	gw.OnSessionExpired = func() { fired++ }

	var out []Season
	err := gw.GetJSON(context.Background(), "/seasons", &out)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if fired != 1 {
		t.Errorf("OnSessionExpired fired %d times, want 1", fired)
	}

	// Each failing call fires the hook again.
	_ = gw.GetJSON(context.Background(), "/seasons", &out)
	if fired != 2 {
		t.Errorf("OnSessionExpired fired %d times after second call, want 2", fired)
	}
}

func TestGatewayValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": {"name": ["name is required"], "initials": ["too long"]}}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, nil)
	err := gw.PostJSON(context.Background(), "/teams", Team{}, nil)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if got := ve.Fields["name"]; len(got) != 1 || got[0] != "name is required" {
		t.Errorf("Fields[name] = %v", got)
	}
	if got := ve.Fields["initials"]; len(got) != 1 || got[0] != "too long" {
		t.Errorf("Fields[initials] = %v", got)
	}
}

func TestGatewayBadRequestWithoutFieldErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "malformed id"}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, nil)
	err := gw.Delete(context.Background(), "/teams/abc")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "malformed id" {
		t.Errorf("APIError = %+v", apiErr)
	}
}

func TestGatewayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "boom"}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, nil)
	var out []Game
	err := gw.GetJSON(context.Background(), "/games", &out)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}

func TestGatewayGetBlob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, staticTokens{token: "tok"})
	data, contentType, err := gw.GetBlob(context.Background(), "/reports/season/1")
	if err != nil {
		t.Fatalf("GetBlob: %v", err)
	}
	if contentType != "application/pdf" {
		t.Errorf("contentType = %q", contentType)
	}
	if string(data) != "%PDF-1.4 fake" {
		t.Errorf("data = %q", data)
	}
}
