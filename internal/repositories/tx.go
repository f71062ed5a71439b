package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// withTx runs fn inside a transaction, rolling back if fn fails.
func withTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
