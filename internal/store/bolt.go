package store

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/ibarra/shelfr/internal/model"
)

// boltBucketBooks holds the library. Keys are big-endian insertion counters
// so a bucket walk returns books in the order they were added.
const boltBucketBooks = "books"

// Bolt persists the library in a bbolt file, one JSON value per book.
type Bolt struct {
	storage *bbolt.DB
}

// NewBolt opens (or creates) the bolt database at path.
func NewBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	instance, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := instance.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketBooks))

		return err
	}); err != nil {
		_ = instance.Close()

		return nil, err
	}

	return &Bolt{storage: instance}, nil
}

// Load walks the books bucket in key order.
func (b *Bolt) Load() ([]model.Book, error) {
	var out []model.Book

	err := b.storage.View(func(tx *bbolt.Tx) error {
		books := tx.Bucket([]byte(boltBucketBooks))

		return books.ForEach(func(_, v []byte) error {
			var book model.Book
			if err := json.Unmarshal(v, &book); err != nil {
				// A damaged record does not take the rest of the
				// library down.
				return nil
			}

			out = append(out, book)

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Save drops and rebuilds the books bucket in a single transaction.
func (b *Bolt) Save(books []model.Book) error {
	return b.storage.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(boltBucketBooks)); err != nil {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(boltBucketBooks))
		if err != nil {
			return err
		}

		for i, book := range books {
			data, err := json.Marshal(book)
			if err != nil {
				return err
			}

			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(i))

			if err := bucket.Put(key, data); err != nil {
				return err
			}
		}

		return nil
	})
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.storage.Close()
}
