package basedata

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Get returns a record, disabled or not.
func (s *Service) Get(ctx context.Context, id int64) (*domain.BaseData, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// List returns every record ordered by id.
func (s *Service) List(ctx context.Context) ([]*domain.BaseData, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// ListByType returns the records of one category ordered by id.
func (s *Service) ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil, domain.NewValidationError("type", "required")
	}
	recs, err := s.records.ListByType(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("list records by type: %w", err)
	}
	return recs, nil
}

// GetVersions returns the version ledger of a record, highest version first.
// The ledger outlives the record, so a deleted id still has history.
func (s *Service) GetVersions(ctx context.Context, id int64) ([]*domain.BaseDataVersion, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	versions, err := s.versions.ListByRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	return versions, nil
}

// GetLogs returns the audit log of a record, newest first.
func (s *Service) GetLogs(ctx context.Context, id int64) ([]*domain.BaseDataLog, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	logs, err := s.audit.ListByRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

// DecodeVersion returns the record state captured in a ledger row and the
// snapshot schema it was written with.
func DecodeVersion(v *domain.BaseDataVersion) (*domain.BaseData, int, error) {
	return decodeSnapshot(v.Snapshot)
}
