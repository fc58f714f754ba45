package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-keeper/internal/config"
	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

// NewQueue opens the durable queue selected by cfg.Driver:
//   - "sqlite": opens cfg.DSN with mattn/go-sqlite3 and runs the migrations;
//   - "bolt": opens cfg.DSN as a BoltDB file.
func NewQueue(ctx context.Context, cfg config.ClientQueue, log *logger.Logger) (Queue, error) {
	log.Info().Str("func", "NewQueue").Str("driver", cfg.Driver).Msg("opening durable queue...")

	switch cfg.Driver {
	case config.QueueDriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteQueue(db, log), nil
	case config.QueueDriverBolt:
		return NewBoltQueue(cfg.DSN, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueueDriver, cfg.Driver)
	}
}
