package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var idSeq atomic.Int64

func init() {
	// Start far above anything BIGSERIAL hands out during a test run.
	idSeq.Store(time.Now().UnixNano() / 1000)
}

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueID returns an id that no seeded row uses, for record_id references.
func UniqueID() int64 {
	return idSeq.Add(1)
}

// SeedBaseData inserts an active base-data record at version 1 with a unique
// value in the given category.
func SeedBaseData(t *testing.T, pool *pgxpool.Pool, typ string) domain.BaseData {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.BaseData{
		Type:        typ,
		Value:       "value-" + UniqueSuffix(),
		Description: "seeded",
		Version:     1,
		CreatedBy:   "seed",
		CreatedAt:   now,
		UpdatedBy:   "seed",
		UpdatedAt:   now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO base_data (type, value, description, version, created_by, created_at, updated_by, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		rec.Type, rec.Value, rec.Description, rec.Version, rec.CreatedBy, rec.CreatedAt, rec.UpdatedBy, rec.UpdatedAt,
	).Scan(&rec.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedBaseData: %v", err)
	}

	return rec
}

// SeedLegacyBaseData inserts a record whose version column is NULL, the
// shape of rows created before versioning existed.
func SeedLegacyBaseData(t *testing.T, pool *pgxpool.Pool, typ string) domain.BaseData {
	t.Helper()

	rec := SeedBaseData(t, pool, typ)
	if _, err := pool.Exec(context.Background(), `UPDATE base_data SET version = NULL WHERE id = $1`, rec.ID); err != nil {
		t.Fatalf("testhelper: SeedLegacyBaseData: %v", err)
	}
	rec.Version = 0
	return rec
}

// SeedDictValue inserts an enabled value into a fresh dictionary code and
// returns it. extra may be nil.
func SeedDictValue(t *testing.T, pool *pgxpool.Pool, dictCode string, extra map[string]any) domain.DictValue {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	v := domain.DictValue{
		DictCode:  dictCode,
		ValueCode: "v_" + UniqueSuffix(),
		ValueName: "Seeded value",
		Order:     1,
		ExtraData: extra,
		Status:    domain.DictStatusEnabled,
		Version:   1,
		CreatedBy: "seed",
		CreatedAt: now,
		UpdatedBy: "seed",
		UpdatedAt: now,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO base_dict_value (dict_code, value_code, value_name, value_order, extra_data, status, version,
		                              created_by, created_at, updated_by, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		v.DictCode, v.ValueCode, v.ValueName, v.Order, v.ExtraData, int(v.Status), v.Version,
		v.CreatedBy, v.CreatedAt, v.UpdatedBy, v.UpdatedAt,
	).Scan(&v.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedDictValue: %v", err)
	}

	return v
}
