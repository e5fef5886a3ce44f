// Package storage provides SQLite-backed client-side storage: named
// profiles carrying key/value data.
package storage

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/go-skiff/skiff/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

const (
	// MaxProfileNameLength bounds profile names.
	MaxProfileNameLength = 256
	// MaxDataKeyLength bounds data keys.
	MaxDataKeyLength = 256
)

// Config holds configuration for opening a Store.
type Config struct {
	// Path is the file path for file-based SQLite. If empty, or when
	// SessionPersistence is false, an in-memory database is used.
	Path string

	// SessionPersistence keeps data across sessions. When false, the store
	// is in-memory regardless of Path.
	SessionPersistence bool
}

// Store is a SQLite-backed client storage.
type Store struct {
	db         *sql.DB
	persistent bool
}

// Profile identifies a client-side data namespace.
type Profile struct {
	// ID is the profile's generated identifier.
	ID string
	// Name is the caller-chosen profile name, unique per store.
	Name string
}

// Open opens (or creates) the store described by cfg.
func Open(cfg Config) (*Store, error) {
	var dsn string
	persistent := cfg.SessionPersistence && cfg.Path != ""

	if persistent {
		// Apply PRAGMAs per-connection via DSN so the pool always has them.
		dsn = fmt.Sprintf(
			"file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)",
			cfg.Path,
		)
	} else {
		// A uniquely named shared-cache memory database keeps the schema
		// visible across pooled connections without leaking between stores.
		dsn = fmt.Sprintf(
			"file:skiffmem_%s?mode=memory&cache=shared&_pragma=foreign_keys(ON)",
			uuid.NewString(),
		)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, storageErr("storage.Open", fmt.Errorf("open database: %w", err))
	}

	// The schema is CREATE TABLE IF NOT EXISTS throughout, so applying it on
	// every open also repairs pre-existing empty database files.
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, storageErr("storage.Open", fmt.Errorf("exec schema: %w", err))
	}

	return &Store{db: db, persistent: persistent}, nil
}

// Persistent reports whether data survives Close.
func (s *Store) Persistent() bool {
	return s.persistent
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateProfile creates a new named profile. Names must be non-empty,
// unique, and at most MaxProfileNameLength bytes.
func (s *Store) CreateProfile(ctx context.Context, name string) (*Profile, error) {
	if name == "" || len(name) > MaxProfileNameLength {
		return nil, storageErr("storage.CreateProfile", fmt.Errorf("invalid profile name %q", name))
	}
	profile := &Profile{ID: uuid.NewString(), Name: name}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, created_at) VALUES (?, ?, ?)`,
		profile.ID, profile.Name, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, storageErr("storage.CreateProfile", err)
	}
	return profile, nil
}

// Profile looks up a profile by name. Returns nil without error when the
// profile does not exist.
func (s *Store) Profile(ctx context.Context, name string) (*Profile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM profiles WHERE name = ?`, name)
	var profile Profile
	if err := row.Scan(&profile.ID, &profile.Name); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, storageErr("storage.Profile", err)
	}
	return &profile, nil
}

// StoreData stores a key/value pair in the profile, replacing any previous
// value for the key.
func (s *Store) StoreData(ctx context.Context, profile *Profile, key, value string) error {
	if profile == nil {
		return storageErr("storage.StoreData", fmt.Errorf("nil profile"))
	}
	if key == "" || len(key) > MaxDataKeyLength {
		return storageErr("storage.StoreData", fmt.Errorf("invalid data key %q", key))
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile_data (profile_id, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (profile_id, key) DO UPDATE SET value = excluded.value`,
		profile.ID, key, value,
	)
	if err != nil {
		return storageErr("storage.StoreData", err)
	}
	return nil
}

// GetData retrieves the value stored under key. The second return value
// reports whether the key was present.
func (s *Store) GetData(ctx context.Context, profile *Profile, key string) (string, bool, error) {
	if profile == nil {
		return "", false, storageErr("storage.GetData", fmt.Errorf("nil profile"))
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT value FROM profile_data WHERE profile_id = ? AND key = ?`,
		profile.ID, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, storageErr("storage.GetData", err)
	}
	return value, true, nil
}

// ClearData removes a single key from the profile.
func (s *Store) ClearData(ctx context.Context, profile *Profile, key string) error {
	if profile == nil {
		return storageErr("storage.ClearData", fmt.Errorf("nil profile"))
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM profile_data WHERE profile_id = ? AND key = ?`,
		profile.ID, key)
	if err != nil {
		return storageErr("storage.ClearData", err)
	}
	return nil
}

// ClearAllData removes every key from the profile.
func (s *Store) ClearAllData(ctx context.Context, profile *Profile) error {
	if profile == nil {
		return storageErr("storage.ClearAllData", fmt.Errorf("nil profile"))
	}
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM profile_data WHERE profile_id = ?`, profile.ID)
	if err != nil {
		return storageErr("storage.ClearAllData", err)
	}
	return nil
}

func storageErr(op string, err error) *errors.SkiffError {
	return &errors.SkiffError{Op: op, Kind: errors.KindStorage, Err: err}
}
