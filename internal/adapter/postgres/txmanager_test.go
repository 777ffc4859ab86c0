package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres"
	"github.com/heartmarshall/petcare-basedata/internal/adapter/postgres/testhelper"
)

func TestRunInTx_Mock_Commit(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO base_data_log").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		_, err := postgres.QuerierFromCtx(ctx, mock).Exec(ctx, "INSERT INTO base_data_log DEFAULT VALUES")
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx: unexpected error: %v", err)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRunInTx_Mock_RollbackOnError(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)
	tm := postgres.NewTxManager(mock)
	sentinel := errors.New("business logic error")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRunInTx_Mock_BeginError(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	called := false
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error from Begin")
	}
	if called {
		t.Error("fn must not run when Begin fails")
	}
}

func TestQuerierFromCtx_WithoutTx(t *testing.T) {
	t.Parallel()
	mock := testhelper.NewMockPool(t)

	if got := postgres.QuerierFromCtx(context.Background(), mock); got != mock {
		t.Error("QuerierFromCtx without tx should return the pool")
	}
}

// ---------------------------------------------------------------------------
// Integration: real PostgreSQL
// ---------------------------------------------------------------------------

func logCount(t *testing.T, q postgres.Querier, recordID int64) int {
	t.Helper()
	var n int
	err := q.QueryRow(context.Background(),
		`SELECT count(*) FROM base_data_log WHERE record_id = $1`, recordID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("logCount query: %v", err)
	}
	return n
}

func insertLog(ctx context.Context, q postgres.Querier, recordID int64) error {
	_, err := q.Exec(ctx,
		`INSERT INTO base_data_log (record_id, action, detail, operated_by) VALUES ($1, 'CREATE', '', 'test')`,
		recordID,
	)
	return err
}

func TestRunInTx_Commit(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	recordID := testhelper.UniqueID()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return insertLog(ctx, postgres.QuerierFromCtx(ctx, pool), recordID)
	})
	if err != nil {
		t.Fatalf("RunInTx returned error: %v", err)
	}
	if got := logCount(t, pool, recordID); got != 1 {
		t.Fatalf("log rows = %d, want 1 after commit", got)
	}
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	recordID := testhelper.UniqueID()
	sentinel := errors.New("business logic error")

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertLog(ctx, postgres.QuerierFromCtx(ctx, pool), recordID); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got: %v", err)
	}
	if got := logCount(t, pool, recordID); got != 0 {
		t.Fatalf("log rows = %d, want 0 after rollback", got)
	}
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	recordID := testhelper.UniqueID()

	defer func() {
		r := recover()
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
		if got := logCount(t, pool, recordID); got != 0 {
			t.Fatalf("log rows = %d, want 0 after panic", got)
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := insertLog(ctx, postgres.QuerierFromCtx(ctx, pool), recordID); err != nil {
			t.Fatalf("insert inside tx failed: %v", err)
		}
		panic("test panic")
	})
}
