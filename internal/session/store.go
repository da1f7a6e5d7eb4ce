// Package session holds the single bearer token the client authenticates with
// and the auth gate derived from it.
package session

import (
	"context"
	"errors"
)

// Key is the storage key the token lives under in every backend.
const Key = "authToken"

var ErrNoToken = errors.New("no token found - please log in again")

// Store persists a single bearer token.
// Load returns an empty string and no error when nothing is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
