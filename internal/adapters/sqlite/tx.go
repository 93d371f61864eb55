package sqlite

import (
	"context"
	"database/sql"
	"time"
)

// kvTx groups the statements of one store write
type kvTx struct {
	ctx context.Context
	tx  *sql.Tx
}

// put inserts or replaces a value and stamps it with the write time
func (t *kvTx) put(key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT OR REPLACE INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
	`, key, value, time.Now().Unix())
	if err != nil {
		return err
	}
	return t.touch()
}

// remove deletes a key
func (t *kvTx) remove(key string) error {
	if _, err := t.tx.ExecContext(t.ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return err
	}
	return t.touch()
}

// touch records the time of the last committed write
func (t *kvTx) touch() error {
	_, err := t.tx.ExecContext(t.ctx, `
		INSERT OR REPLACE INTO meta (key, value) VALUES ('last_write', ?)
	`, time.Now().UTC().Format(time.RFC3339))
	return err
}
