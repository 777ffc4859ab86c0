package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// BaseDataRepo is the base_data table of a Store.
type BaseDataRepo struct {
	s *Store
}

// BaseData returns the record repository.
func (s *Store) BaseData() *BaseDataRepo {
	return &BaseDataRepo{s: s}
}

func (st *state) findTypeValue(typ, value string, exceptID int64) bool {
	for id, r := range st.records {
		if id != exceptID && r.Type == typ && r.Value == value {
			return true
		}
	}
	return false
}

// Create inserts a record and assigns its id.
func (r *BaseDataRepo) Create(ctx context.Context, rec *domain.BaseData) (*domain.BaseData, error) {
	row := cloneRecord(*rec)
	row.ID = r.s.recordSeq.Add(1)

	err := r.s.write(ctx, func(st *state, s *Store) error {
		if s.uniqueTypeValue && st.findTypeValue(row.Type, row.Value, row.ID) {
			return fmt.Errorf("base_data %s/%s: %w", row.Type, row.Value, domain.ErrAlreadyExists)
		}
		st.records[row.ID] = cloneRecord(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := cloneRecord(row)
	return &out, nil
}

// Update overwrites rec.ID. A non-nil expectedVersion must equal the stored
// version, at issue time and again at commit.
func (r *BaseDataRepo) Update(ctx context.Context, rec *domain.BaseData, expectedVersion *int) (*domain.BaseData, error) {
	row := cloneRecord(*rec)

	err := r.s.write(ctx, func(st *state, s *Store) error {
		cur, ok := st.records[row.ID]
		if !ok {
			return fmt.Errorf("base_data %d: %w", row.ID, domain.ErrNotFound)
		}
		if expectedVersion != nil && cur.Version != *expectedVersion {
			return fmt.Errorf("base_data %d: version %d: %w", row.ID, *expectedVersion, domain.ErrConflict)
		}
		if s.uniqueTypeValue && st.findTypeValue(row.Type, row.Value, row.ID) {
			return fmt.Errorf("base_data %s/%s: %w", row.Type, row.Value, domain.ErrAlreadyExists)
		}
		st.records[row.ID] = cloneRecord(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := cloneRecord(row)
	return &out, nil
}

// Delete removes a record; a missing id is not an error.
func (r *BaseDataRepo) Delete(ctx context.Context, id int64) error {
	return r.s.write(ctx, func(st *state, _ *Store) error {
		delete(st.records, id)
		return nil
	})
}

// GetByID returns a record or domain.ErrNotFound.
func (r *BaseDataRepo) GetByID(ctx context.Context, id int64) (*domain.BaseData, error) {
	var out *domain.BaseData
	err := r.s.view(ctx, func(st *state) error {
		rec, ok := st.records[id]
		if !ok {
			return fmt.Errorf("base_data %d: %w", id, domain.ErrNotFound)
		}
		c := cloneRecord(rec)
		out = &c
		return nil
	})
	return out, err
}

// GetByTypeValue returns the lowest-id record with (type, value), or
// domain.ErrNotFound. Without the unique constraint several may exist.
func (r *BaseDataRepo) GetByTypeValue(ctx context.Context, typ, value string) (*domain.BaseData, error) {
	var out *domain.BaseData
	err := r.s.view(ctx, func(st *state) error {
		recs := sortedRecords(st, func(b domain.BaseData) bool { return b.Type == typ && b.Value == value })
		if len(recs) == 0 {
			return fmt.Errorf("base_data %s/%s: %w", typ, value, domain.ErrNotFound)
		}
		out = recs[0]
		return nil
	})
	return out, err
}

// List returns every record ordered by id.
func (r *BaseDataRepo) List(ctx context.Context) ([]*domain.BaseData, error) {
	var out []*domain.BaseData
	err := r.s.view(ctx, func(st *state) error {
		out = sortedRecords(st, nil)
		return nil
	})
	return out, err
}

// ListByType returns the records of one category ordered by id.
func (r *BaseDataRepo) ListByType(ctx context.Context, typ string) ([]*domain.BaseData, error) {
	var out []*domain.BaseData
	err := r.s.view(ctx, func(st *state) error {
		out = sortedRecords(st, func(b domain.BaseData) bool { return b.Type == typ })
		return nil
	})
	return out, err
}

func sortedRecords(st *state, keep func(domain.BaseData) bool) []*domain.BaseData {
	out := make([]*domain.BaseData, 0, len(st.records))
	for _, rec := range st.records {
		if keep != nil && !keep(rec) {
			continue
		}
		c := cloneRecord(rec)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
