package basedata_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/basedata"
	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var columns = []string{"id", "type", "value", "description", "version", "disabled_at", "created_by", "created_at", "updated_by", "updated_at"}

func intPtr(v int) *int { return &v }

// ---------------------------------------------------------------------------
// SQL shape (pgxmock)
// ---------------------------------------------------------------------------

func TestRepo_Create_Mock(t *testing.T) {
	t.Parallel()
	now := time.Now().UTC()

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows(columns).
					AddRow(int64(1), "species", "dog", "", intPtr(1), (*time.Time)(nil), "alice", now, "alice", now)
				mock.ExpectQuery("INSERT INTO base_data").
					WithArgs("species", "dog", "", 1, pgxmock.AnyArg(), "alice", now, "alice", now).
					WillReturnRows(rows)
			},
		},
		{
			name: "duplicate type/value",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery("INSERT INTO base_data").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mock := testhelper.NewMockPool(t)
			tt.setup(mock)

			got, err := basedata.New(mock).Create(context.Background(), &domain.BaseData{
				Type: "species", Value: "dog", Version: 1,
				CreatedBy: "alice", CreatedAt: now, UpdatedBy: "alice", UpdatedAt: now,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Create() unexpected error: %v", err)
				}
				if got.ID != 1 || got.Version != 1 {
					t.Errorf("Create() = id %d v%d, want id 1 v1", got.ID, got.Version)
				}
			}
			testhelper.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_Update_Mock_GuardedNoRowsIsConflict(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)

	mock.ExpectQuery(`UPDATE base_data SET .* WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnError(pgx.ErrNoRows)

	expected := 3
	_, err := basedata.New(mock).Update(context.Background(), &domain.BaseData{ID: 9, Version: 4}, &expected)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Update() error = %v, want ErrConflict", err)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_Update_Mock_UnguardedNoRowsIsNotFound(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)

	mock.ExpectQuery(`UPDATE base_data SET .* WHERE id = \$\d+ RETURNING`).
		WillReturnError(pgx.ErrNoRows)

	_, err := basedata.New(mock).Update(context.Background(), &domain.BaseData{ID: 9, Version: 4}, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Update() error = %v, want ErrNotFound", err)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_GetByID_Mock_NullVersion(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)
	now := time.Now().UTC()

	rows := pgxmock.NewRows(columns).
		AddRow(int64(5), "size", "large", "legacy", (*int)(nil), (*time.Time)(nil), "import", now, "import", now)
	mock.ExpectQuery("SELECT .* FROM base_data WHERE id").WithArgs(int64(5)).WillReturnRows(rows)

	got, err := basedata.New(mock).GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.Version != 0 {
		t.Errorf("Version = %d, want 0 for NULL", got.Version)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_GetByID_Mock_NotFound(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)

	mock.ExpectQuery("SELECT .* FROM base_data").WithArgs(int64(404)).WillReturnError(pgx.ErrNoRows)

	_, err := basedata.New(mock).GetByID(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

// ---------------------------------------------------------------------------
// Integration (PostgreSQL)
// ---------------------------------------------------------------------------

func newRecord(typ, value string) *domain.BaseData {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.BaseData{
		Type: typ, Value: value, Description: "d", Version: 1,
		CreatedBy: "alice", CreatedAt: now, UpdatedBy: "alice", UpdatedAt: now,
	}
}

func TestRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := basedata.New(pool)
	ctx := context.Background()
	typ := "species-" + testhelper.UniqueSuffix()

	created, err := repo.Create(ctx, newRecord(typ, "dog"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Create returned zero id")
	}

	got, err := repo.GetByTypeValue(ctx, typ, "dog")
	if err != nil {
		t.Fatalf("GetByTypeValue: %v", err)
	}
	if got.ID != created.ID || got.Version != 1 || got.CreatedBy != "alice" {
		t.Errorf("GetByTypeValue = %+v, want id %d v1 by alice", got, created.ID)
	}

	if _, err := repo.Create(ctx, newRecord(typ, "dog")); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("duplicate Create error = %v, want ErrAlreadyExists", err)
	}
}

func TestRepo_Update_OptimisticGuard(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := basedata.New(pool)
	ctx := context.Background()
	seeded := testhelper.SeedBaseData(t, pool, "guard")

	next := seeded
	next.Description = "changed"
	next.Version = 2
	expected := 1
	updated, err := repo.Update(ctx, &next, &expected)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Version != 2 || updated.Description != "changed" {
		t.Errorf("Update = v%d %q, want v2 changed", updated.Version, updated.Description)
	}

	// Same expected version again: the row has moved on.
	next.Version = 2
	if _, err := repo.Update(ctx, &next, &expected); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("stale Update error = %v, want ErrConflict", err)
	}
}

func TestRepo_Update_LegacyNullVersion(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := basedata.New(pool)
	seeded := testhelper.SeedLegacyBaseData(t, pool, "legacy")

	got, err := repo.GetByID(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Version != 0 {
		t.Fatalf("legacy Version = %d, want 0", got.Version)
	}

	got.Version = got.NextVersion()
	expected := 0
	updated, err := repo.Update(context.Background(), got, &expected)
	if err != nil {
		t.Fatalf("Update guarded on NULL version: %v", err)
	}
	if updated.Version != 2 {
		t.Errorf("Version = %d, want 2", updated.Version)
	}
}

func TestRepo_ListByType_OrderedByID(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := basedata.New(pool)
	typ := "list-" + testhelper.UniqueSuffix()

	a := testhelper.SeedBaseData(t, pool, typ)
	b := testhelper.SeedBaseData(t, pool, typ)
	testhelper.SeedBaseData(t, pool, "other-"+testhelper.UniqueSuffix())

	got, err := repo.ListByType(context.Background(), typ)
	if err != nil {
		t.Fatalf("ListByType: %v", err)
	}
	if len(got) != 2 || got[0].ID != a.ID || got[1].ID != b.ID {
		t.Fatalf("ListByType = %d rows, want [%d %d]", len(got), a.ID, b.ID)
	}
}

func TestRepo_Delete(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := basedata.New(pool)
	ctx := context.Background()
	seeded := testhelper.SeedBaseData(t, pool, "delete")

	if err := repo.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, seeded.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByID after delete = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, seeded.ID); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
}
