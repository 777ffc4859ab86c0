// Package basedata implements the versioned base-data record repository
// using PostgreSQL.
package basedata

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
	table   = "base_data"
	entity  = "base_data"
	columns = "id, type, value, description, version, disabled_at, created_by, created_at, updated_by, updated_at"
)

// Repo provides base-data record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new base-data repository. db is usually a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID          int64      `db:"id"`
	Type        string     `db:"type"`
	Value       string     `db:"value"`
	Description string     `db:"description"`
	Version     *int       `db:"version"`
	DisabledAt  *time.Time `db:"disabled_at"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedBy   string     `db:"updated_by"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.BaseData {
	rec := &domain.BaseData{
		ID:          r.ID,
		Type:        r.Type,
		Value:       r.Value,
		Description: r.Description,
		DisabledAt:  r.DisabledAt,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedBy:   r.UpdatedBy,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Version != nil {
		rec.Version = *r.Version
	}
	return rec
}

// versionParam stores a zero version as NULL.
func versionParam(v int) any {
	if v <= 0 {
		return nil
	}
	return v
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a record and returns it with the generated id.
// A duplicate (type, value) maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec *domain.BaseData) (*domain.BaseData, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("type", "value", "description", "version", "disabled_at",
			"created_by", "created_at", "updated_by", "updated_at").
		Values(rec.Type, rec.Value, rec.Description, versionParam(rec.Version), rec.DisabledAt,
			rec.CreatedBy, rec.CreatedAt, rec.UpdatedBy, rec.UpdatedAt).
		Suffix("RETURNING " + columns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, rec.Type+"/"+rec.Value)
	}
	return out.toDomain(), nil
}

// Update overwrites every mutable column of rec.ID. When expectedVersion is
// non-nil the write only applies if the stored version still equals it;
// otherwise domain.ErrConflict is returned. Zero matches a NULL version.
func (r *Repo) Update(ctx context.Context, rec *domain.BaseData, expectedVersion *int) (*domain.BaseData, error) {
	b := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"type":        rec.Type,
			"value":       rec.Value,
			"description": rec.Description,
			"version":     versionParam(rec.Version),
			"disabled_at": rec.DisabledAt,
			"created_by":  rec.CreatedBy,
			"created_at":  rec.CreatedAt,
			"updated_by":  rec.UpdatedBy,
			"updated_at":  rec.UpdatedAt,
		}).
		Where(sq.Eq{"id": rec.ID})

	if expectedVersion != nil {
		b = b.Where(sq.Eq{"version": versionParam(*expectedVersion)})
	}

	query, args, err := b.Suffix("RETURNING " + columns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	var out row
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...)
	if err != nil {
		if expectedVersion != nil && pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %d: version %d: %w", entity, rec.ID, *expectedVersion, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, entity, rec.ID)
	}
	return out.toDomain(), nil
}

// Delete hard-deletes a record. Deleting a missing id is not an error.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, entity, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.BaseData, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByTypeValue returns the record with the given (type, value) or
// domain.ErrNotFound.
func (r *Repo) GetByTypeValue(ctx context.Context, typ, value string) (*domain.BaseData, error) {
	return r.getOne(ctx, sq.Eq{"type": typ, "value": value}, typ+"/"+value)
}

// List returns every record ordered by id.
func (r *Repo) List(ctx context.Context) ([]*domain.BaseData, error) {
	return r.list(ctx, nil)
}

// ListByType returns the records of one category ordered by id.
func (r *Repo) ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error) {
	return r.list(ctx, sq.Eq{"type": typ})
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.BaseData, error) {
	query, args, err := postgres.Builder().
		Select(columns).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	return out.toDomain(), nil
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer) ([]*domain.BaseData, error) {
	b := postgres.Builder().
		Select(columns).
		From(table).
		OrderBy("id ASC")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", entity, err)
	}

	out := make([]*domain.BaseData, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
