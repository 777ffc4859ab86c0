package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"
)

// NewMockPool returns a pgxmock pool closed via t.Cleanup. It satisfies
// postgres.Querier, so repositories can be built on it directly.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

// ExpectationsWereMet fails the test if any queued expectation was not used.
func ExpectationsWereMet(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled pgxmock expectations: %v", err)
	}
}
