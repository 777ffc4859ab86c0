// Package dictionary implements the dictionary type, value and value-history
// repositories using PostgreSQL.
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/petcare-basedata/internal/adapter/postgres"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const (
	typeTable    = "base_dict_type"
	valueTable   = "base_dict_value"
	versionTable = "base_dict_version"

	typeColumns    = "id, dict_code, dict_name, dict_level, parent_code, is_fixed, description, status, version, created_at, updated_at"
	valueColumns   = "id, dict_code, value_code, value_name, value_order, extra_data, color_tag, icon, status, version, created_by, created_at, updated_by, updated_at"
	versionColumns = "id, dict_code, value_code, version, snapshot, action, operation_reason, operated_by, operated_at"
)

// Repo provides dictionary persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new dictionary repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Types
// ---------------------------------------------------------------------------

type typeRow struct {
	ID          int64     `db:"id"`
	DictCode    string    `db:"dict_code"`
	DictName    string    `db:"dict_name"`
	DictLevel   int       `db:"dict_level"`
	ParentCode  *string   `db:"parent_code"`
	IsFixed     bool      `db:"is_fixed"`
	Description string    `db:"description"`
	Status      int       `db:"status"`
	Version     int       `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r typeRow) toDomain() *domain.DictType {
	return &domain.DictType{
		ID:          r.ID,
		DictCode:    r.DictCode,
		DictName:    r.DictName,
		DictLevel:   r.DictLevel,
		ParentCode:  r.ParentCode,
		IsFixed:     r.IsFixed,
		Description: r.Description,
		Status:      domain.DictStatus(r.Status),
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ListTypes returns every dictionary type ordered by level, then code.
func (r *Repo) ListTypes(ctx context.Context) ([]*domain.DictType, error) {
	query, args, err := postgres.Builder().
		Select(typeColumns).
		From(typeTable).
		OrderBy("dict_level ASC", "dict_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", typeTable, err)
	}

	var rows []typeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", typeTable, err)
	}

	out := make([]*domain.DictType, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetType returns a dictionary type or domain.ErrNotFound.
func (r *Repo) GetType(ctx context.Context, dictCode string) (*domain.DictType, error) {
	query, args, err := postgres.Builder().
		Select(typeColumns).
		From(typeTable).
		Where(sq.Eq{"dict_code": dictCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", typeTable, err)
	}

	var out typeRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, typeTable, dictCode)
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Values
// ---------------------------------------------------------------------------

type valueRow struct {
	ID        int64          `db:"id"`
	DictCode  string         `db:"dict_code"`
	ValueCode string         `db:"value_code"`
	ValueName string         `db:"value_name"`
	Order     int            `db:"value_order"`
	ExtraData map[string]any `db:"extra_data"`
	ColorTag  *string        `db:"color_tag"`
	Icon      *string        `db:"icon"`
	Status    int            `db:"status"`
	Version   int            `db:"version"`
	CreatedBy string         `db:"created_by"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedBy string         `db:"updated_by"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r valueRow) toDomain() *domain.DictValue {
	return &domain.DictValue{
		ID:        r.ID,
		DictCode:  r.DictCode,
		ValueCode: r.ValueCode,
		ValueName: r.ValueName,
		Order:     r.Order,
		ExtraData: r.ExtraData,
		ColorTag:  r.ColorTag,
		Icon:      r.Icon,
		Status:    domain.DictStatus(r.Status),
		Version:   r.Version,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedBy: r.UpdatedBy,
		UpdatedAt: r.UpdatedAt,
	}
}

// extraParam encodes extra data for a JSONB column; empty maps are stored as NULL.
func extraParam(m map[string]any) (any, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal extra_data: %w", err)
	}
	return b, nil
}

// ListActive returns the enabled values of a dictionary ordered by
// value_order, then value_code. An unknown dictCode yields an empty slice.
func (r *Repo) ListActive(ctx context.Context, dictCode string) ([]*domain.DictValue, error) {
	return r.listValues(ctx, sq.Eq{"dict_code": dictCode, "status": int(domain.DictStatusEnabled)})
}

// ListActiveByExtra returns the enabled values of a dictionary whose
// extra_data[key] equals want.
func (r *Repo) ListActiveByExtra(ctx context.Context, dictCode, key, want string) ([]*domain.DictValue, error) {
	return r.listValues(ctx, sq.And{
		sq.Eq{"dict_code": dictCode, "status": int(domain.DictStatusEnabled)},
		sq.Expr("extra_data ->> ?::text = ?", key, want),
	})
}

// GetValue returns a value regardless of status, or domain.ErrNotFound.
func (r *Repo) GetValue(ctx context.Context, dictCode, valueCode string) (*domain.DictValue, error) {
	query, args, err := postgres.Builder().
		Select(valueColumns).
		From(valueTable).
		Where(sq.Eq{"dict_code": dictCode, "value_code": valueCode}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", valueTable, err)
	}

	var out valueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, valueTable, domain.DictKey{DictCode: dictCode, ValueCode: valueCode})
	}
	return out.toDomain(), nil
}

// GetValues returns the values matching keys in one query, regardless of
// status. Missing keys are simply absent from the result.
func (r *Repo) GetValues(ctx context.Context, keys []domain.DictKey) ([]*domain.DictValue, error) {
	if len(keys) == 0 {
		return []*domain.DictValue{}, nil
	}

	or := make(sq.Or, len(keys))
	for i, k := range keys {
		or[i] = sq.Eq{"dict_code": k.DictCode, "value_code": k.ValueCode}
	}
	return r.listValues(ctx, or)
}

func (r *Repo) listValues(ctx context.Context, where sq.Sqlizer) ([]*domain.DictValue, error) {
	query, args, err := postgres.Builder().
		Select(valueColumns).
		From(valueTable).
		Where(where).
		OrderBy("value_order ASC", "value_code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", valueTable, err)
	}

	var rows []valueRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", valueTable, err)
	}

	out := make([]*domain.DictValue, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CreateValue inserts a value. A duplicate (dict_code, value_code) maps to
// domain.ErrAlreadyExists.
func (r *Repo) CreateValue(ctx context.Context, v *domain.DictValue) (*domain.DictValue, error) {
	extra, err := extraParam(v.ExtraData)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Insert(valueTable).
		Columns("dict_code", "value_code", "value_name", "value_order", "extra_data", "color_tag", "icon",
			"status", "version", "created_by", "created_at", "updated_by", "updated_at").
		Values(v.DictCode, v.ValueCode, v.ValueName, v.Order, extra, v.ColorTag, v.Icon,
			int(v.Status), v.Version, v.CreatedBy, v.CreatedAt, v.UpdatedBy, v.UpdatedAt).
		Suffix("RETURNING " + valueColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", valueTable, err)
	}

	var out valueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, valueTable, v.DictCode+"/"+v.ValueCode)
	}
	return out.toDomain(), nil
}

// UpdateValue overwrites the mutable columns of a value if its stored version
// still equals expectedVersion; otherwise domain.ErrConflict is returned.
func (r *Repo) UpdateValue(ctx context.Context, v *domain.DictValue, expectedVersion int) (*domain.DictValue, error) {
	extra, err := extraParam(v.ExtraData)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().
		Update(valueTable).
		SetMap(map[string]any{
			"value_name":  v.ValueName,
			"value_order": v.Order,
			"extra_data":  extra,
			"color_tag":   v.ColorTag,
			"icon":        v.Icon,
			"status":      int(v.Status),
			"version":     v.Version,
			"updated_by":  v.UpdatedBy,
			"updated_at":  v.UpdatedAt,
		}).
		Where(sq.Eq{"dict_code": v.DictCode, "value_code": v.ValueCode, "version": expectedVersion}).
		Suffix("RETURNING " + valueColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", valueTable, err)
	}

	var out valueRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s/%s: version %d: %w", valueTable, v.DictCode, v.ValueCode, expectedVersion, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, valueTable, v.DictCode+"/"+v.ValueCode)
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Value history
// ---------------------------------------------------------------------------

type versionRow struct {
	ID              int64     `db:"id"`
	DictCode        string    `db:"dict_code"`
	ValueCode       string    `db:"value_code"`
	Version         int       `db:"version"`
	Snapshot        []byte    `db:"snapshot"`
	Action          string    `db:"action"`
	OperationReason string    `db:"operation_reason"`
	OperatedBy      string    `db:"operated_by"`
	OperatedAt      time.Time `db:"operated_at"`
}

func (r versionRow) toDomain() *domain.DictValueVersion {
	return &domain.DictValueVersion{
		ID:              r.ID,
		DictCode:        r.DictCode,
		ValueCode:       r.ValueCode,
		Version:         r.Version,
		Snapshot:        r.Snapshot,
		Action:          domain.DictAction(r.Action),
		OperationReason: r.OperationReason,
		OperatedBy:      r.OperatedBy,
		OperatedAt:      r.OperatedAt,
	}
}

// AppendVersion writes one history row for a value.
func (r *Repo) AppendVersion(ctx context.Context, v *domain.DictValueVersion) (*domain.DictValueVersion, error) {
	query, args, err := postgres.Builder().
		Insert(versionTable).
		Columns("dict_code", "value_code", "version", "snapshot", "action", "operation_reason", "operated_by", "operated_at").
		Values(v.DictCode, v.ValueCode, v.Version, v.Snapshot, string(v.Action), v.OperationReason, v.OperatedBy, v.OperatedAt).
		Suffix("RETURNING " + versionColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", versionTable, err)
	}

	var out versionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, versionTable, v.DictCode+"/"+v.ValueCode)
	}
	return out.toDomain(), nil
}

// ListHistory returns the history of a value, newest first.
func (r *Repo) ListHistory(ctx context.Context, dictCode, valueCode string) ([]*domain.DictValueVersion, error) {
	query, args, err := postgres.Builder().
		Select(versionColumns).
		From(versionTable).
		Where(sq.Eq{"dict_code": dictCode, "value_code": valueCode}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", versionTable, err)
	}

	var rows []versionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", versionTable, err)
	}

	out := make([]*domain.DictValueVersion, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
