package bolt

import (
	"alcyxob/student-portal/internal/repository"
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// One top-level bucket holds a nested bucket per session.
var preferencesBucket = []byte("Preferences")

type preferenceStore struct {
	db *bbolt.DB
}

// OpenPreferenceStore opens (or creates) the bolt file at path.
func OpenPreferenceStore(path string) (repository.PreferenceStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(preferencesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &preferenceStore{db: db}, nil
}

func (s *preferenceStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	var value string
	err := s.db.View(func(tx *bbolt.Tx) error {
		sb := tx.Bucket(preferencesBucket).Bucket([]byte(sessionID))
		if sb == nil {
			return repository.ErrNotFound
		}
		v := sb.Get([]byte(key))
		if v == nil {
			return repository.ErrNotFound
		}
		value = string(v)
		return nil
	})
	return value, err
}

func (s *preferenceStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		sb, err := tx.Bucket(preferencesBucket).CreateBucketIfNotExists([]byte(sessionID))
		if err != nil {
			return err
		}
		return sb.Put([]byte(key), []byte(value))
	})
}

func (s *preferenceStore) Delete(ctx context.Context, sessionID, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		sb := tx.Bucket(preferencesBucket).Bucket([]byte(sessionID))
		if sb == nil {
			return nil
		}
		return sb.Delete([]byte(key))
	})
}

func (s *preferenceStore) Clear(ctx context.Context, sessionID string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		err := tx.Bucket(preferencesBucket).DeleteBucket([]byte(sessionID))
		if errors.Is(err, bbolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

func (s *preferenceStore) Close(ctx context.Context) error {
	return s.db.Close()
}
