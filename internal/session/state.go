package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/oauth2"
)

const tokenType = "Bearer"

var ErrEmptyToken = errors.New("refusing to persist an empty token")

// Checker reports whether the process currently holds a session.
type Checker interface {
	IsAuthenticated() bool
}

var (
	_ Checker            = (*State)(nil)
	_ oauth2.TokenSource = (*State)(nil)
)

// State is the auth gate: a token mirrored from a Store plus the
// authenticated flag derived from it.
type State struct {
	store Store

	mu            sync.RWMutex
	token         string
	authenticated bool
}

// Restore seeds a State from whatever token the store holds.
// The state is authenticated iff that token is non-empty.
func Restore(ctx context.Context, store Store) (*State, error) {
	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return &State{
		store:         store,
		token:         token,
		authenticated: token != "",
	}, nil
}

func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *State) SetAuthenticated(authenticated bool) {
	s.mu.Lock()
	s.authenticated = authenticated
	s.mu.Unlock()
}

// CurrentToken returns the token and whether one is present.
func (s *State) CurrentToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Login persists token and flips the gate to authenticated.
// The gate is untouched if persisting fails.
func (s *State) Login(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Logout clears the stored token and flips the gate to unauthenticated.
func (s *State) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.token = ""
	s.authenticated = false
	s.mu.Unlock()
	return nil
}

// Token implements oauth2.TokenSource. There is no expiry or refresh;
// a missing token is reported as ErrNoToken.
func (s *State) Token() (*oauth2.Token, error) {
	token, ok := s.CurrentToken()
	if !ok {
		return nil, ErrNoToken
	}
	return &oauth2.Token{AccessToken: token, TokenType: tokenType}, nil
}
