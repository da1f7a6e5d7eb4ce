package db

import (
	"context"
	"database/sql"
	"time"
)

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Querier interface {
	GetSession(ctx context.Context, key string) (Session, error)
	UpsertSession(ctx context.Context, arg UpsertSessionParams) error
	DeleteSession(ctx context.Context, key string) error
}

var _ Querier = (*Queries)(nil)

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Session struct {
	Key       string
	Token     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const getSession = `SELECT key, token, created_at, updated_at FROM sessions WHERE key = ?`

func (q *Queries) GetSession(ctx context.Context, key string) (Session, error) {
	row := q.db.QueryRowContext(ctx, getSession, key)
	var s Session
	err := row.Scan(&s.Key, &s.Token, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

type UpsertSessionParams struct {
	Key   string
	Token string
	Now   time.Time
}

const upsertSession = `
INSERT INTO sessions (key, token, created_at, updated_at)
VALUES (?1, ?2, ?3, ?3)
ON CONFLICT (key) DO UPDATE SET
	token = excluded.token,
	updated_at = excluded.updated_at`

func (q *Queries) UpsertSession(ctx context.Context, arg UpsertSessionParams) error {
	_, err := q.db.ExecContext(ctx, upsertSession, arg.Key, arg.Token, arg.Now)
	return err
}

const deleteSession = `DELETE FROM sessions WHERE key = ?`

func (q *Queries) DeleteSession(ctx context.Context, key string) error {
	_, err := q.db.ExecContext(ctx, deleteSession, key)
	return err
}
