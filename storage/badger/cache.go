package badger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"

	"github.com/wattbot/retrieval/core"
	"github.com/wattbot/retrieval/storage"
)

const vectorPrefix = "embvec"

// Cache is a BadgerDB-backed embedding cache.
type Cache struct {
	db     *badger.DB
	logger *slog.Logger
}

var _ storage.EmbeddingCache = (*Cache)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenCache opens a BadgerDB-backed embedding cache at the specified path.
// Creates the directory if it doesn't exist. With inMemory set, nothing
// touches disk; useful for tests.
func OpenCache(filePath string, inMemory bool) (*Cache, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Cache{
		db:     db,
		logger: slog.Default(),
	}, nil
}

// Close closes the underlying BadgerDB database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get retrieves a cached vector. A missing key is reported via the bool
// result, not as an error.
func (c *Cache) Get(ctx context.Context, key core.ID) ([]float32, bool, error) {
	if c.db.IsClosed() {
		return nil, false, storage.ErrStorageClosed
	}

	var vector []float32
	found := false
	err := c.db.View(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVectorKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			vector, err = storage.UnmarshalVector(val)
			if err != nil {
				return err
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}
	return vector, found, nil
}

// Put stores a vector, replacing any previous value for the key.
func (c *Cache) Put(ctx context.Context, key core.ID, vector []float32) error {
	if c.db.IsClosed() {
		return storage.ErrStorageClosed
	}

	return c.db.Update(func(tx *badger.Txn) error {
		return tx.Set(makeVectorKey(key), storage.MarshalVector(vector))
	})
}

// makeVectorKey generates the badger key for a cached vector.
func makeVectorKey(id core.ID) []byte {
	prefix := []byte(vectorPrefix + ":")
	return append(prefix, storage.MarshalID(id)...)
}
