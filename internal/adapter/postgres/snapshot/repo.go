// Package snapshot implements the base-data version ledger using PostgreSQL.
// Rows are immutable: the repository only appends and reads.
package snapshot

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
	table   = "base_data_version"
	entity  = "base_data_version"
	columns = "id, record_id, version, snapshot, schema_version, action, operated_by, operated_at, remark"
)

// Repo provides version-ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID            int64     `db:"id"`
	RecordID      int64     `db:"record_id"`
	Version       int       `db:"version"`
	Snapshot      []byte    `db:"snapshot"`
	SchemaVersion int       `db:"schema_version"`
	Action        string    `db:"action"`
	OperatedBy    string    `db:"operated_by"`
	OperatedAt    time.Time `db:"operated_at"`
	Remark        string    `db:"remark"`
}

func (r row) toDomain() *domain.BaseDataVersion {
	return &domain.BaseDataVersion{
		ID:            r.ID,
		RecordID:      r.RecordID,
		Version:       r.Version,
		Snapshot:      r.Snapshot,
		SchemaVersion: r.SchemaVersion,
		Action:        domain.BaseDataAction(r.Action),
		OperatedBy:    r.OperatedBy,
		OperatedAt:    r.OperatedAt,
		Remark:        r.Remark,
	}
}

// Append writes one ledger row and returns it with its id.
func (r *Repo) Append(ctx context.Context, v *domain.BaseDataVersion) (*domain.BaseDataVersion, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("record_id", "version", "snapshot", "schema_version", "action", "operated_by", "operated_at", "remark").
		Values(v.RecordID, v.Version, v.Snapshot, v.SchemaVersion, string(v.Action), v.OperatedBy, v.OperatedAt, v.Remark).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, v.RecordID)
	}
	return out.toDomain(), nil
}

// ListByRecord returns the ledger of a record ordered by version DESC. Rows
// sharing a version number are ordered newest write first.
func (r *Repo) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataVersion, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"record_id": recordID}).
		OrderBy("version DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s for record %d: %w", entity, recordID, err)
	}

	out := make([]*domain.BaseDataVersion, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetByRecordVersion returns the most recently written ledger row with the
// given version, or domain.ErrNotFound.
func (r *Repo) GetByRecordVersion(ctx context.Context, recordID int64, version int) (*domain.BaseDataVersion, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(sq.Eq{"record_id": recordID, "version": version}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, fmt.Sprintf("%d@v%d", recordID, version))
	}
	return out.toDomain(), nil
}

// MaxVersion returns the highest version in the ledger of a record, 0 if the
// ledger is empty.
func (r *Repo) MaxVersion(ctx context.Context, recordID int64) (int, error) {
	query, args, err := postgres.Builder().
		Select("COALESCE(MAX(version), 0)").
		From(table).
		Where(sq.Eq{"record_id": recordID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build max version: %w", err)
	}

	var max int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&max); err != nil {
		return 0, postgres.MapError(err, entity, recordID)
	}
	return max, nil
}
