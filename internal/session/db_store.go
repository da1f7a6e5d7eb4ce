package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/garrettladley/safequake/internal/db"
)

var _ Store = (*DBStore)(nil)

type DBStore struct {
	querier db.Querier
	now     func() time.Time
}

func NewDBStore(querier db.Querier) *DBStore {
	return &DBStore{querier: querier, now: time.Now}
}

func (s *DBStore) Load(ctx context.Context) (string, error) {
	row, err := s.querier.GetSession(ctx, Key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return row.Token, nil
}

func (s *DBStore) Save(ctx context.Context, token string) error {
	err := s.querier.UpsertSession(ctx, db.UpsertSessionParams{
		Key:   Key,
		Token: token,
		Now:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

func (s *DBStore) Clear(ctx context.Context) error {
	if err := s.querier.DeleteSession(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
