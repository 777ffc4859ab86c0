package dictionary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// Ref names one dictionary reference held by a field of another entity,
// e.g. a pet's species.
type Ref struct {
	Field     string
	DictCode  string
	ValueCode string
}

// ValidateRefs checks every ref against its dictionary and returns a
// ValidationError naming each field whose value is unknown (or disabled,
// with ValidateActiveOnly). Refs with an empty value are skipped. Lookups
// are batched into one repository call.
func (s *Service) ValidateRefs(ctx context.Context, refs ...Ref) error {
	loader := dataloader.NewBatchedLoader(
		newValuesBatchFn(s.repo),
		dataloader.WithWait[domain.DictKey, *domain.DictValue](wait),
		dataloader.WithBatchCapacity[domain.DictKey, *domain.DictValue](maxBatch),
	)

	type pending struct {
		ref   Ref
		thunk dataloader.Thunk[*domain.DictValue]
	}
	var checks []pending
	for _, r := range refs {
		if strings.TrimSpace(r.ValueCode) == "" {
			continue
		}
		key := domain.DictKey{DictCode: r.DictCode, ValueCode: r.ValueCode}
		checks = append(checks, pending{ref: r, thunk: loader.Load(ctx, key)})
	}

	var errs []domain.FieldError
	for _, c := range checks {
		v, err := c.thunk()
		if err != nil {
			return fmt.Errorf("validate %s: %w", c.ref.Field, err)
		}
		if !s.accepts(v) {
			errs = append(errs, domain.FieldError{
				Field:   c.ref.Field,
				Message: fmt.Sprintf("unknown %s value %q", c.ref.DictCode, c.ref.ValueCode),
			})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func newValuesBatchFn(repo dictRepo) dataloader.BatchFunc[domain.DictKey, *domain.DictValue] {
	return func(ctx context.Context, keys []domain.DictKey) []*dataloader.Result[*domain.DictValue] {
		vals, err := repo.GetValues(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[*domain.DictValue], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[*domain.DictValue]{Error: err}
			}
			return results
		}

		byKey := make(map[domain.DictKey]*domain.DictValue, len(vals))
		for _, v := range vals {
			byKey[domain.DictKey{DictCode: v.DictCode, ValueCode: v.ValueCode}] = v
		}

		results := make([]*dataloader.Result[*domain.DictValue], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*domain.DictValue]{Data: byKey[k]}
		}
		return results
	}
}
