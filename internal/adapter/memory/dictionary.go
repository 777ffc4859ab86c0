package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// DictionaryRepo holds dictionary types, values and value history.
type DictionaryRepo struct {
	s *Store
}

// Dictionary returns the dictionary repository.
func (s *Store) Dictionary() *DictionaryRepo {
	return &DictionaryRepo{s: s}
}

// PutType inserts or replaces a dictionary type.
func (r *DictionaryRepo) PutType(ctx context.Context, t domain.DictType) error {
	if t.ID == 0 {
		t.ID = r.s.dictSeq.Add(1)
	}
	return r.s.write(ctx, func(st *state, _ *Store) error {
		st.dictTypes[t.DictCode] = t
		return nil
	})
}

// ListTypes returns every type ordered by level, then code.
func (r *DictionaryRepo) ListTypes(ctx context.Context) ([]*domain.DictType, error) {
	out := make([]*domain.DictType, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, t := range st.dictTypes {
			c := t
			out = append(out, &c)
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].DictLevel != out[j].DictLevel {
			return out[i].DictLevel < out[j].DictLevel
		}
		return out[i].DictCode < out[j].DictCode
	})
	return out, err
}

// GetType returns a type or domain.ErrNotFound.
func (r *DictionaryRepo) GetType(ctx context.Context, dictCode string) (*domain.DictType, error) {
	var out *domain.DictType
	err := r.s.view(ctx, func(st *state) error {
		t, ok := st.dictTypes[dictCode]
		if !ok {
			return fmt.Errorf("base_dict_type %s: %w", dictCode, domain.ErrNotFound)
		}
		out = &t
		return nil
	})
	return out, err
}

// ListActive returns enabled values ordered by order, then value code.
func (r *DictionaryRepo) ListActive(ctx context.Context, dictCode string) ([]*domain.DictValue, error) {
	return r.list(ctx, func(v domain.DictValue) bool {
		return v.DictCode == dictCode && v.IsActive()
	})
}

// ListActiveByExtra returns enabled values whose extra data[key] equals want.
func (r *DictionaryRepo) ListActiveByExtra(ctx context.Context, dictCode, key, want string) ([]*domain.DictValue, error) {
	return r.list(ctx, func(v domain.DictValue) bool {
		if v.DictCode != dictCode || !v.IsActive() {
			return false
		}
		got, ok := v.ExtraString(key)
		return ok && got == want
	})
}

// GetValue returns a value regardless of status.
func (r *DictionaryRepo) GetValue(ctx context.Context, dictCode, valueCode string) (*domain.DictValue, error) {
	key := domain.DictKey{DictCode: dictCode, ValueCode: valueCode}
	var out *domain.DictValue
	err := r.s.view(ctx, func(st *state) error {
		v, ok := st.dictValues[key]
		if !ok {
			return fmt.Errorf("base_dict_value %s: %w", key, domain.ErrNotFound)
		}
		c := cloneDictValue(v)
		out = &c
		return nil
	})
	return out, err
}

// GetValues returns the values present among keys.
func (r *DictionaryRepo) GetValues(ctx context.Context, keys []domain.DictKey) ([]*domain.DictValue, error) {
	want := make(map[domain.DictKey]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	return r.list(ctx, func(v domain.DictValue) bool {
		_, ok := want[domain.DictKey{DictCode: v.DictCode, ValueCode: v.ValueCode}]
		return ok
	})
}

// CreateValue inserts a value; (dictCode, valueCode) is always unique.
func (r *DictionaryRepo) CreateValue(ctx context.Context, v *domain.DictValue) (*domain.DictValue, error) {
	row := cloneDictValue(*v)
	row.ID = r.s.dictSeq.Add(1)
	key := domain.DictKey{DictCode: row.DictCode, ValueCode: row.ValueCode}

	err := r.s.write(ctx, func(st *state, _ *Store) error {
		if _, ok := st.dictValues[key]; ok {
			return fmt.Errorf("base_dict_value %s: %w", key, domain.ErrAlreadyExists)
		}
		st.dictValues[key] = cloneDictValue(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := cloneDictValue(row)
	return &out, nil
}

// UpdateValue overwrites a value if its stored version equals expectedVersion.
func (r *DictionaryRepo) UpdateValue(ctx context.Context, v *domain.DictValue, expectedVersion int) (*domain.DictValue, error) {
	row := cloneDictValue(*v)
	key := domain.DictKey{DictCode: row.DictCode, ValueCode: row.ValueCode}

	err := r.s.write(ctx, func(st *state, _ *Store) error {
		cur, ok := st.dictValues[key]
		if !ok || cur.Version != expectedVersion {
			return fmt.Errorf("base_dict_value %s: version %d: %w", key, expectedVersion, domain.ErrConflict)
		}
		row.ID = cur.ID
		row.CreatedBy, row.CreatedAt = cur.CreatedBy, cur.CreatedAt
		st.dictValues[key] = cloneDictValue(row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := cloneDictValue(row)
	return &out, nil
}

// AppendVersion writes one value history row.
func (r *DictionaryRepo) AppendVersion(ctx context.Context, v *domain.DictValueVersion) (*domain.DictValueVersion, error) {
	row := *v
	row.ID = r.s.dictSeq.Add(1)
	row.Snapshot = cloneBytes(v.Snapshot)

	err := r.s.write(ctx, func(st *state, _ *Store) error {
		st.dictVersions = append(st.dictVersions, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := row
	return &out, nil
}

// ListHistory returns the history of a value, newest first.
func (r *DictionaryRepo) ListHistory(ctx context.Context, dictCode, valueCode string) ([]*domain.DictValueVersion, error) {
	out := make([]*domain.DictValueVersion, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range st.dictVersions {
			if v.DictCode == dictCode && v.ValueCode == valueCode {
				c := v
				c.Snapshot = cloneBytes(v.Snapshot)
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, err
}

func (r *DictionaryRepo) list(ctx context.Context, keep func(domain.DictValue) bool) ([]*domain.DictValue, error) {
	out := make([]*domain.DictValue, 0)
	err := r.s.view(ctx, func(st *state) error {
		for _, v := range st.dictValues {
			if keep(v) {
				c := cloneDictValue(v)
				out = append(out, &c)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ValueCode < out[j].ValueCode
	})
	return out, err
}
