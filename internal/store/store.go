package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/vbonduro/restaurantmenu/internal/domain"
)

// DBTX is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Session exposes the entity stores bound to a single transaction.
type Session struct {
	Restaurants *RestaurantStore
	MenuItems   *MenuItemStore
}

func NewSession(db DBTX) *Session {
	return &Session{
		Restaurants: NewRestaurantStore(db),
		MenuItems:   NewMenuItemStore(db),
	}
}

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// WithinTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back on every other exit, including a panic, so the
// underlying connection always goes back to the pool.
func (s *Store) WithinTx(ctx context.Context, fn func(*Session) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin transaction", err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to roll back transaction", "error", err)
		}
	}()

	if err := fn(NewSession(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit transaction", err)
	}
	committed = true
	return nil
}

func storeErr(op string, err error) error {
	return &domain.StoreError{Op: op, Err: err}
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "error", err)
	}
}
