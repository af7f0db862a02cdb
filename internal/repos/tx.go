package repos

import "github.com/jmoiron/sqlx"

// WithTx runs fn inside one transaction: commit when fn returns nil,
// rollback and re-raise otherwise. The deferred Rollback is a no-op after a
// successful Commit. Each request gets its own transaction; it must not be
// retained past fn.
func WithTx(db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
