package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// VersionRepo is the base_data_version ledger of a Store.
type VersionRepo struct {
	s *Store
}

// Versions returns the version ledger repository.
func (s *Store) Versions() *VersionRepo {
	return &VersionRepo{s: s}
}

// Append writes one ledger row.
func (r *VersionRepo) Append(ctx context.Context, v *domain.BaseDataVersion) (*domain.BaseDataVersion, error) {
	row := *v
	row.ID = r.s.versionSeq.Add(1)
	row.Snapshot = cloneBytes(v.Snapshot)

	err := r.s.write(ctx, func(st *state, _ *Store) error {
		st.versions = append(st.versions, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := row
	out.Snapshot = cloneBytes(row.Snapshot)
	return &out, nil
}

// ListByRecord returns the ledger of a record by version DESC, newest write
// first on ties.
func (r *VersionRepo) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataVersion, error) {
	var out []*domain.BaseDataVersion
	err := r.s.view(ctx, func(st *state) error {
		out = versionsOf(st, recordID)
		return nil
	})
	return out, err
}

// GetByRecordVersion returns the newest ledger row with the given version.
func (r *VersionRepo) GetByRecordVersion(ctx context.Context, recordID int64, version int) (*domain.BaseDataVersion, error) {
	var out *domain.BaseDataVersion
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range versionsOf(st, recordID) {
			if v.Version == version {
				out = v
				return nil
			}
		}
		return fmt.Errorf("base_data_version %d@v%d: %w", recordID, version, domain.ErrNotFound)
	})
	return out, err
}

// MaxVersion returns the highest ledger version of a record, 0 if none.
func (r *VersionRepo) MaxVersion(ctx context.Context, recordID int64) (int, error) {
	max := 0
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range st.versions {
			if v.RecordID == recordID && v.Version > max {
				max = v.Version
			}
		}
		return nil
	})
	return max, err
}

func versionsOf(st *state, recordID int64) []*domain.BaseDataVersion {
	out := make([]*domain.BaseDataVersion, 0)
	for _, v := range st.versions {
		if v.RecordID != recordID {
			continue
		}
		c := v
		c.Snapshot = cloneBytes(v.Snapshot)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Version != out[j].Version {
			return out[i].Version > out[j].Version
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// LogRepo is the base_data_log table of a Store.
type LogRepo struct {
	s *Store
}

// Logs returns the audit log repository.
func (s *Store) Logs() *LogRepo {
	return &LogRepo{s: s}
}

// Log appends an audit entry.
func (r *LogRepo) Log(ctx context.Context, entry *domain.BaseDataLog) error {
	row := *entry
	row.ID = r.s.logSeq.Add(1)

	return r.s.write(ctx, func(st *state, _ *Store) error {
		st.logs = append(st.logs, row)
		return nil
	})
}

// ListByRecord returns the entries of a record, newest first.
func (r *LogRepo) ListByRecord(ctx context.Context, recordID int64) ([]*domain.BaseDataLog, error) {
	out := make([]*domain.BaseDataLog, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, l := range st.logs {
			if l.RecordID == recordID {
				c := l
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].OperatedAt.Equal(out[j].OperatedAt) {
			return out[i].OperatedAt.After(out[j].OperatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, err
}
