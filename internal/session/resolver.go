package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
)

const (
	sessionName      = "model_hub"
	sessionTokenKey  = "oauth_token"
	sessionAuthState = "oauth_state"
)

// Resolver maps an inbound request to the caller's hub access token.
type Resolver interface {
	ResolveToken(r *http.Request) (string, bool)
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(r *http.Request) (string, bool)

func (f ResolverFunc) ResolveToken(r *http.Request) (string, bool) {
	return f(r)
}

// CookieStore keeps the hub OAuth token in a signed, optionally encrypted cookie.
type CookieStore struct {
	store *sessions.CookieStore
}

func NewCookieStore(cfg *Config) *CookieStore {
	keys := [][]byte{[]byte(cfg.AuthKey)}
	if cfg.EncryptionKey != "" {
		keys = append(keys, []byte(cfg.EncryptionKey))
	}

	store := sessions.NewCookieStore(keys...)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = cfg.Secure
	store.Options.MaxAge = cfg.MaxAge
	if cfg.SameSiteNone {
		store.Options.SameSite = http.SameSiteNoneMode
	} else {
		store.Options.SameSite = http.SameSiteLaxMode
	}

	return &CookieStore{store: store}
}

// ResolveToken returns the access token of a signed-in caller. Missing, unreadable
// and expired sessions all resolve to no token.
func (s *CookieStore) ResolveToken(r *http.Request) (string, bool) {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		slog.Debug("Session cookie could not be decoded", "error", err)
		return "", false
	}

	raw := stringValue(session, sessionTokenKey)
	if raw == "" {
		return "", false
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		slog.Warn("OAuth token could not be parsed from session data", "error", err)
		return "", false
	}

	if !token.Valid() {
		return "", false
	}

	return token.AccessToken, true
}

func (s *CookieStore) SaveToken(w http.ResponseWriter, r *http.Request, token *oauth2.Token) error {
	b, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("serialize oauth token: %w", err)
	}
	return s.setValue(w, r, sessionTokenKey, string(b))
}

func (s *CookieStore) SaveState(w http.ResponseWriter, r *http.Request, state string) error {
	return s.setValue(w, r, sessionAuthState, state)
}

// PopState returns the pending OAuth state and removes it from the session.
func (s *CookieStore) PopState(w http.ResponseWriter, r *http.Request) (string, error) {
	session := s.getSession(r)
	state := stringValue(session, sessionAuthState)
	if state == "" {
		return "", nil
	}

	delete(session.Values, sessionAuthState)
	if err := session.Save(r, w); err != nil {
		return "", fmt.Errorf("error saving session: %w", err)
	}
	return state, nil
}

// Clear expires the session cookie.
func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session := s.getSession(r)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func (s *CookieStore) getSession(r *http.Request) *sessions.Session {
	session, err := s.store.Get(r, sessionName)
	if err != nil {
		session, _ = s.store.New(r, sessionName)
	}
	return session
}

func (s *CookieStore) setValue(w http.ResponseWriter, r *http.Request, key, value string) error {
	session := s.getSession(r)
	session.Values[key] = value
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}

func stringValue(session *sessions.Session, key string) string {
	v, ok := session.Values[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
