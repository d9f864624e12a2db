// Package auth holds the session token issued by the Session endpoint.
package auth

import (
	"context"
	"sync"
	"time"
)

// Token is a session token returned by a successful login.
type Token struct {
	Value      string
	APIVersion string
	IssuedAt   time.Time
}

// Valid reports whether the token can be attached to a request.
func (t *Token) Valid() bool {
	return t != nil && t.Value != ""
}

// TokenStore provides thread-safe token storage.
type TokenStore struct {
	mutex sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the stored token, or nil.
func (s *TokenStore) Get() *Token {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// Set replaces the stored token.
func (s *TokenStore) Set(token *Token) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// SessionTokenManager hands the current session token to the transport.
// There is no expiry tracking and no refresh: an expired token surfaces as an
// ordinary unsuccessful response.
type SessionTokenManager struct {
	store *TokenStore
	now   func() time.Time
}

// NewSessionTokenManager creates a token manager with no token.
func NewSessionTokenManager() *SessionTokenManager {
	return &SessionTokenManager{
		store: NewTokenStore(),
		now:   time.Now,
	}
}

// GetToken returns the session token, or "" when not logged in.
func (m *SessionTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", nil
	}

	return token.Value, nil
}

// SetToken stores a freshly issued token.
func (m *SessionTokenManager) SetToken(value, apiVersion string) {
	m.store.Set(&Token{
		Value:      value,
		APIVersion: apiVersion,
		IssuedAt:   m.now(),
	})
}

// Token returns the stored token, or nil.
func (m *SessionTokenManager) Token() *Token {
	return m.store.Get()
}

// Authenticated reports whether a usable token is held.
func (m *SessionTokenManager) Authenticated() bool {
	return m.store.Get().Valid()
}
