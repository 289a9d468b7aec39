// Package kv is the durable string key-value storage behind sessions.
// Each device gets its own key namespace, see Namespace.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Store is a flat string-to-string map.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key.  Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases the backend.
	Close() error
}

// Options selects and configures a driver.
type Options struct {
	Driver      string
	Path        string
	DatabaseURL string
}

// Open returns the Store for opts.Driver: memory, badger, sqlite or
// postgres.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "memory":
		return NewMemory(), nil
	case "badger", "":
		return NewBadger(opts.Path)
	case "sqlite":
		return NewSQLite(opts.Path)
	case "postgres":
		return NewPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}

// Namespace prefixes keys so that several devices share one Store.
type Namespace struct {
	store  Store
	prefix string
}

// NewNamespace returns the key space of one device.
func NewNamespace(store Store, deviceID string) Namespace {
	return Namespace{store: store, prefix: "device/" + deviceID + "/"}
}

func (n Namespace) Get(ctx context.Context, key string) (string, bool, error) {
	return n.store.Get(ctx, n.prefix+key)
}

func (n Namespace) Set(ctx context.Context, key, value string) error {
	return n.store.Set(ctx, n.prefix+key, value)
}

func (n Namespace) Delete(ctx context.Context, key string) error {
	return n.store.Delete(ctx, n.prefix+key)
}
