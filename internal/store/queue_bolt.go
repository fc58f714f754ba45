package store

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// boltQueue keeps one bucket per channel. Keys are big-endian sequence
// numbers, so cursor order is insertion order.
type boltQueue struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewBoltQueue opens (or creates) the BoltDB file at path.
func NewBoltQueue(path string, log *logger.Logger) (Queue, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create queue dir: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewBoltQueue").Str("path", path).Msg("failed to open bolt queue")
		return nil, fmt.Errorf("open bolt queue: %w", err)
	}

	log.Debug().Str("func", "NewBoltQueue").Str("path", path).Msg("bolt queue opened")
	return &boltQueue{db: db, logger: log}, nil
}

func (q *boltQueue) Size(ctx context.Context, channel string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int
	err := q.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(channel))
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return n, nil
}

func (q *boltQueue) Peek(ctx context.Context, channel string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		item string
		ok   bool
	)
	err := q.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(channel))
		if b == nil {
			return nil
		}
		if k, v := b.Cursor().First(); k != nil {
			item, ok = string(v), true
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return item, ok, nil
}

func (q *boltQueue) Enqueue(ctx context.Context, channel, item string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := q.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(channel))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(sequenceKey(seq), []byte(item))
	})
	if err != nil {
		q.logger.Err(err).Str("func", "boltQueue.Enqueue").Str("channel", channel).Msg("failed to append queue item")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return nil
}

func (q *boltQueue) Dequeue(ctx context.Context, channel string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	var (
		item string
		ok   bool
	)
	err := q.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(channel))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		k, v := c.First()
		if k == nil {
			return nil
		}
		// v is only valid inside the transaction
		item, ok = string(v), true
		return c.Delete()
	})
	if err != nil {
		q.logger.Err(err).Str("func", "boltQueue.Dequeue").Str("channel", channel).Msg("failed to remove queue head")
		return "", false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return item, ok, nil
}

func (q *boltQueue) Reset(ctx context.Context, channel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := q.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(channel)) == nil {
			return nil
		}
		return tx.DeleteBucket([]byte(channel))
	})
	if err != nil {
		q.logger.Err(err).Str("func", "boltQueue.Reset").Str("channel", channel).Msg("failed to reset queue")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	q.logger.Info().Str("func", "boltQueue.Reset").Str("channel", channel).Msg("queue reset")
	return nil
}

func (q *boltQueue) Close() error {
	return q.db.Close()
}

func sequenceKey(seq uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, seq)
	return k
}
