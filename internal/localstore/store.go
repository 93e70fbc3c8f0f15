// Package localstore mirrors the message store against an on-device
// bbolt file. It exists for deployments without a reachable backend and
// is wired in only when STORAGE_MODE=local — a degraded-availability
// mode, never blended with server state.
package localstore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/repository"

	"go.etcd.io/bbolt"
)

var (
	bucketMessages = []byte("messages")
	bucketAuth     = []byte("auth")
)

type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the bbolt file and initializes buckets.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	store := &Store{db: db}
	if err := store.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketMessages); err != nil {
			return err
		}
		if _, err := tx.CreateBucketIfNotExists(bucketAuth); err != nil {
			return err
		}
		return nil
	})
}

func itob(id uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, id)
	return b
}

func (s *Store) Create(ctx context.Context, msg *domain.ContactMessage) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMessages)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		msg.ID = int64(seq)

		data, err := json.Marshal(msg)
		if err != nil {
			return err
		}
		return b.Put(itob(seq), data)
	})
}

func (s *Store) List(ctx context.Context) ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMessages).ForEach(func(_, v []byte) error {
			var msg domain.ContactMessage
			if err := json.Unmarshal(v, &msg); err != nil {
				return err
			}
			messages = append(messages, msg)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	// newest first, matching the SQL store's ordering
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID > messages[j].ID
		}
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketMessages).Get(itob(uint64(id)))
		if v == nil {
			return repository.ErrNotFound
		}
		return json.Unmarshal(v, &msg)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Store) MarkRead(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var msg domain.ContactMessage
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMessages)
		key := itob(uint64(id))
		v := b.Get(key)
		if v == nil {
			return repository.ErrNotFound
		}
		if err := json.Unmarshal(v, &msg); err != nil {
			return err
		}
		msg.Read = true
		data, err := json.Marshal(&msg)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketMessages)
		key := itob(uint64(id))
		if b.Get(key) == nil {
			return repository.ErrNotFound
		}
		return b.Delete(key)
	})
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.count(func(domain.ContactMessage) bool { return true })
}

func (s *Store) CountUnread(ctx context.Context) (int64, error) {
	return s.count(func(m domain.ContactMessage) bool { return !m.Read })
}

func (s *Store) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return s.count(func(m domain.ContactMessage) bool {
		return !m.CreatedAt.Before(from) && m.CreatedAt.Before(to)
	})
}

func (s *Store) CountDistinctSenders(ctx context.Context) (int64, error) {
	seen := make(map[string]struct{})
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMessages).ForEach(func(_, v []byte) error {
			var msg domain.ContactMessage
			if err := json.Unmarshal(v, &msg); err != nil {
				return err
			}
			seen[msg.Email] = struct{}{}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return int64(len(seen)), nil
}

func (s *Store) count(match func(domain.ContactMessage) bool) (int64, error) {
	var n int64
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMessages).ForEach(func(_, v []byte) error {
			var msg domain.ContactMessage
			if err := json.Unmarshal(v, &msg); err != nil {
				return err
			}
			if match(msg) {
				n++
			}
			return nil
		})
	})
	return n, err
}
