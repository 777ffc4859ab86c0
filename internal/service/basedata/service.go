// Package basedata implements versioned base-data records: every mutation
// writes the record, a full snapshot to the version ledger and an audit log
// entry in one transaction.
package basedata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

type recordRepo interface {
	Create(ctx context.Context, rec *domain.BaseData) (*domain.BaseData, error)
	Update(ctx context.Context, rec *domain.BaseData, expectedVersion *int) (*domain.BaseData, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.BaseData, error)
	GetByTypeValue(ctx context.Context, typ, value string) (*domain.BaseData, error)
	List(ctx context.Context) ([]*domain.BaseData, error)
	ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error)
}

type versionRepo interface {
	Append(ctx context.Context, v *domain.BaseDataVersion) (*domain.BaseDataVersion, error)
	ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataVersion, error)
	GetByRecordVersion(ctx context.Context, recordID int64, version int) (*domain.BaseDataVersion, error)
	MaxVersion(ctx context.Context, recordID int64) (int, error)
}

type auditRepo interface {
	Log(ctx context.Context, entry *domain.BaseDataLog) error
	ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Default remarks written when the caller gives none.
const (
	RemarkCreate = "manual create"
	RemarkUpdate = "manual edit"
)

// Options selects the versioning behavior.
type Options struct {
	RollbackMode domain.RollbackMode
	Guard        domain.ConcurrencyGuard
}

// Service provides base-data record management.
type Service struct {
	records  recordRepo
	versions versionRepo
	audit    auditRepo
	tx       txManager
	opts     Options
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new base-data service. Zero Options fall back to
// compat rollback and optimistic locking.
func NewService(
	log *slog.Logger,
	records recordRepo,
	versions versionRepo,
	audit auditRepo,
	tx txManager,
	opts Options,
) *Service {
	if opts.RollbackMode == "" {
		opts.RollbackMode = domain.RollbackModeCompat
	}
	if opts.Guard == "" {
		opts.Guard = domain.ConcurrencyGuardOptimistic
	}
	return &Service{
		records:  records,
		versions: versions,
		audit:    audit,
		tx:       tx,
		opts:     opts,
		log:      log.With("service", "basedata"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// expected returns the version a guarded write must match, nil when unguarded.
func (s *Service) expected(cur *domain.BaseData) *int {
	if s.opts.Guard == domain.ConcurrencyGuardNone {
		return nil
	}
	v := cur.Version
	return &v
}

// record appends the snapshot and log entry for one action. rec is the state
// captured in the snapshot; version is the ledger version.
func (s *Service) record(ctx context.Context, rec *domain.BaseData, version int, action domain.BaseDataAction, actor, remark string, at time.Time) error {
	blob, schema, err := encodeSnapshot(rec)
	if err != nil {
		return err
	}

	_, err = s.versions.Append(ctx, &domain.BaseDataVersion{
		RecordID:      rec.ID,
		Version:       version,
		Snapshot:      blob,
		SchemaVersion: schema,
		Action:        action,
		OperatedBy:    actor,
		OperatedAt:    at,
		Remark:        remark,
	})
	if err != nil {
		return fmt.Errorf("append version: %w", err)
	}

	err = s.audit.Log(ctx, &domain.BaseDataLog{
		RecordID:   rec.ID,
		Action:     action,
		Detail:     remark,
		OperatedBy: actor,
		OperatedAt: at,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}

	return nil
}
