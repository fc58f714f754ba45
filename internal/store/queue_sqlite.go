package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-time-keeper/internal/logger"
)

const queueTable = "sync_queue"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type sqliteQueue struct {
	*DB
	logger *logger.Logger
}

// NewSQLiteQueue returns a [Queue] stored in the sync_queue table of db.
// The schema must already be migrated.
func NewSQLiteQueue(db *DB, log *logger.Logger) Queue {
	return &sqliteQueue{DB: db, logger: log}
}

func (q *sqliteQueue) Size(ctx context.Context, channel string) (int, error) {
	query, args, err := psql.Select("COUNT(*)").From(queueTable).Where(sq.Eq{"channel": channel}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = q.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Size").Str("channel", channel).Msg("failed to count queue items")
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return n, nil
}

func (q *sqliteQueue) Peek(ctx context.Context, channel string) (string, bool, error) {
	query, args, err := headQuery(channel)
	if err != nil {
		return "", false, err
	}

	var (
		id      int64
		payload string
	)
	err = q.DB.QueryRowContext(ctx, query, args...).Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Peek").Str("channel", channel).Msg("failed to read queue head")
		return "", false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}
	return payload, true, nil
}

func (q *sqliteQueue) Enqueue(ctx context.Context, channel, item string) error {
	query, args, err := psql.Insert(queueTable).Columns("channel", "payload").Values(channel, item).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = q.DB.ExecContext(ctx, query, args...); err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Enqueue").Str("channel", channel).Msg("failed to append queue item")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	return nil
}

func (q *sqliteQueue) Dequeue(ctx context.Context, channel string) (string, bool, error) {
	selectHead, selectArgs, err := headQuery(channel)
	if err != nil {
		return "", false, err
	}

	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var (
		id      int64
		payload string
	)
	err = tx.QueryRowContext(ctx, selectHead, selectArgs...).Scan(&id, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Dequeue").Str("channel", channel).Msg("failed to read queue head")
		return "", false, fmt.Errorf("%w: %v", ErrScanningRow, err)
	}

	deleteHead, deleteArgs, err := psql.Delete(queueTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteHead, deleteArgs...); err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Dequeue").Int64("id", id).Msg("failed to delete queue head")
		return "", false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}
	return payload, true, nil
}

func (q *sqliteQueue) Reset(ctx context.Context, channel string) error {
	query, args, err := psql.Delete(queueTable).Where(sq.Eq{"channel": channel}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		q.logger.Err(err).Str("func", "sqliteQueue.Reset").Str("channel", channel).Msg("failed to reset queue")
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	if n, err := res.RowsAffected(); err == nil {
		q.logger.Info().Str("func", "sqliteQueue.Reset").Str("channel", channel).Int64("removed", n).Msg("queue reset")
	}
	return nil
}

func (q *sqliteQueue) Close() error {
	return q.DB.Close()
}

func headQuery(channel string) (string, []any, error) {
	query, args, err := psql.Select("id", "payload").
		From(queueTable).
		Where(sq.Eq{"channel": channel}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
