package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Badger stores keys in an embedded BadgerDB directory.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) the BadgerDB at path.  An empty path keeps
// the database in memory.
func NewBadger(path string) (*Badger, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Badger{db: db}, nil
}

func (b *Badger) Get(_ context.Context, key string) (string, bool, error) {
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("badger get %s: %w", key, err)
	}
	return string(value), true, nil
}

func (b *Badger) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("badger set %s: %w", key, err)
	}
	return nil
}

func (b *Badger) Delete(_ context.Context, key string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("badger delete %s: %w", key, err)
	}
	return nil
}

func (b *Badger) Ping(context.Context) error {
	if b.db.IsClosed() {
		return errors.New("badger: database is closed")
	}
	return nil
}

func (b *Badger) Close() error {
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close badger: %w", err)
	}
	return nil
}
