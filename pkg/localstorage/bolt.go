package localstorage

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

// DefaultBucket is the bbolt bucket used when none is configured.
const DefaultBucket = "localstorage"

// BoltStorage stores pairs in a single bbolt bucket.
type BoltStorage struct {
	db     *bbolt.DB
	bucket []byte
	owned  bool
}

var _ Backend = (*BoltStorage)(nil)

// NewBoltStorage uses an already open database. Close leaves db open.
func NewBoltStorage(db *bbolt.DB, bucket string) (*BoltStorage, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	s := &BoltStorage{db: db, bucket: []byte(bucket)}
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating bucket %q: %w", bucket, err)
	}
	return s, nil
}

// NewBoltStorageFromFile opens (or creates) the database at path. Close closes it.
func NewBoltStorageFromFile(path, bucket string, options *bbolt.Options) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("opening bbolt db: %w", err)
	}
	s, err := NewBoltStorage(db, bucket)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

func (s *BoltStorage) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}
	var (
		value string
		ok    bool
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		if data := b.Get([]byte(key)); data != nil {
			value, ok = string(data), true
		}
		return nil
	})
	return value, ok, err
}

func (s *BoltStorage) Set(_ context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), []byte(value))
	})
}

func (s *BoltStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

func (s *BoltStorage) Close() error {
	if !s.owned {
		return nil
	}
	return s.db.Close()
}
