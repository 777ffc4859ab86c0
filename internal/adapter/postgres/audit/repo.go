// Package audit implements the base-data audit log using PostgreSQL.
// It provides append-only operations for log entries.
package audit

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/petcare-basedata/internal/adapter/postgres"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const (
	table   = "base_data_log"
	entity  = "base_data_log"
	columns = "id, record_id, action, detail, operated_by, operated_at"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         int64     `db:"id"`
	RecordID   int64     `db:"record_id"`
	Action     string    `db:"action"`
	Detail     string    `db:"detail"`
	OperatedBy string    `db:"operated_by"`
	OperatedAt time.Time `db:"operated_at"`
}

func (r row) toDomain() *domain.BaseDataLog {
	return &domain.BaseDataLog{
		ID:         r.ID,
		RecordID:   r.RecordID,
		Action:     domain.BaseDataAction(r.Action),
		Detail:     r.Detail,
		OperatedBy: r.OperatedBy,
		OperatedAt: r.OperatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a log entry and returns it with its generated id.
func (r *Repo) Create(ctx context.Context, entry *domain.BaseDataLog) (*domain.BaseDataLog, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("record_id", "action", "detail", "operated_by", "operated_at").
		Values(entry.RecordID, string(entry.Action), entry.Detail, entry.OperatedBy, entry.OperatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, entry.RecordID)
	}
	return out.toDomain(), nil
}

// Log appends an entry without returning it.
func (r *Repo) Log(ctx context.Context, entry *domain.BaseDataLog) error {
	_, err := r.Create(ctx, entry)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByRecord returns the entries of a record, newest first.
func (r *Repo) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataLog, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"record_id": recordID}).
		OrderBy("operated_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s for record %d: %w", entity, recordID, err)
	}

	out := make([]*domain.BaseDataLog, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
