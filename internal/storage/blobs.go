package storage

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// blobPrefix namespaces cached binary data away from the settings keys.
const blobPrefix = "blob:"

// Put stores a blob under key, replacing any previous value.
func (s *Storage) Put(key string, data []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(blobPrefix+key), data)
	})
}

// Get returns the blob stored under key, or ErrNotFound.
func (s *Storage) Get(key string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		data, err = item.ValueCopy(nil)
		return err
	})

	return data, err
}

// Delete removes the blob stored under key. Missing keys are not an error.
func (s *Storage) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(blobPrefix + key))
	})
}

// Keys returns the keys of all blobs whose key starts with prefix.
func (s *Storage) Keys(prefix string) ([]string, error) {
	var keys []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(blobPrefix + prefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			key := string(it.Item().Key())
			keys = append(keys, key[len(blobPrefix):])
		}
		return nil
	})

	return keys, err
}

// DeletePrefix removes every blob whose key starts with prefix and returns
// how many were removed.
func (s *Storage) DeletePrefix(prefix string) (int, error) {
	keys, err := s.Keys(prefix)
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	for _, key := range keys {
		if err := wb.Delete([]byte(blobPrefix + key)); err != nil {
			wb.Cancel()
			return 0, err
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, err
	}

	return len(keys), nil
}
