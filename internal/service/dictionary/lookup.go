package dictionary

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// GetValues returns the enabled values of dictCode ordered by order, then
// value code. An unknown dictCode yields an empty list.
func (s *Service) GetValues(ctx context.Context, dictCode string) ([]*domain.DictValue, error) {
	dictCode = strings.TrimSpace(dictCode)
	if dictCode == "" {
		return nil, domain.NewValidationError("dict_code", "required")
	}

	key := valuesKey(dictCode)
	if vals, ok := s.cache.get(key); ok {
		return vals, nil
	}

	gen := s.cache.generation(dictCode)
	vals, err := s.repo.ListActive(ctx, dictCode)
	if err != nil {
		return nil, fmt.Errorf("list values %s: %w", dictCode, err)
	}
	s.cache.set(key, gen, vals)
	return vals, nil
}

// GetValuesByParent returns the enabled values of dictCode whose cascade key
// in extra data equals parent, e.g. the dog breeds of pet_breed.
func (s *Service) GetValuesByParent(ctx context.Context, dictCode, parent string) ([]*domain.DictValue, error) {
	dictCode = strings.TrimSpace(dictCode)
	parent = strings.TrimSpace(parent)

	var errs []domain.FieldError
	if dictCode == "" {
		errs = append(errs, domain.FieldError{Field: "dict_code", Message: "required"})
	}
	if parent == "" {
		errs = append(errs, domain.FieldError{Field: "parent", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	key := parentKey(dictCode, parent)
	if vals, ok := s.cache.get(key); ok {
		return vals, nil
	}

	gen := s.cache.generation(dictCode)
	vals, err := s.repo.ListActiveByExtra(ctx, dictCode, s.cascadeKey(dictCode), parent)
	if err != nil {
		return nil, fmt.Errorf("list values %s by %s: %w", dictCode, parent, err)
	}
	s.cache.set(key, gen, vals)
	return vals, nil
}

// GetValue returns one value regardless of status, or domain.ErrNotFound.
func (s *Service) GetValue(ctx context.Context, dictCode, valueCode string) (*domain.DictValue, error) {
	v, err := s.repo.GetValue(ctx, dictCode, valueCode)
	if err != nil {
		return nil, fmt.Errorf("get value %s/%s: %w", dictCode, valueCode, err)
	}
	return v, nil
}

// IsValid reports whether valueCode exists in dictCode. With
// ValidateActiveOnly the value must also be enabled.
func (s *Service) IsValid(ctx context.Context, dictCode, valueCode string) (bool, error) {
	if strings.TrimSpace(dictCode) == "" || strings.TrimSpace(valueCode) == "" {
		return false, nil
	}

	v, err := s.repo.GetValue(ctx, dictCode, valueCode)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check value %s/%s: %w", dictCode, valueCode, err)
	}
	return s.accepts(v), nil
}

func (s *Service) accepts(v *domain.DictValue) bool {
	if v == nil {
		return false
	}
	return !s.cfg.ValidateActiveOnly || v.IsActive()
}

// GetValueName returns the display name of a value, falling back to the
// value code itself when the value does not exist.
func (s *Service) GetValueName(ctx context.Context, dictCode, valueCode string) (string, error) {
	v, err := s.repo.GetValue(ctx, dictCode, valueCode)
	if errors.Is(err, domain.ErrNotFound) {
		return valueCode, nil
	}
	if err != nil {
		return valueCode, fmt.Errorf("get value name %s/%s: %w", dictCode, valueCode, err)
	}
	return v.ValueName, nil
}

// ListTypes returns every dictionary type.
func (s *Service) ListTypes(ctx context.Context) ([]*domain.DictType, error) {
	types, err := s.repo.ListTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list types: %w", err)
	}
	return types, nil
}

// GetAllCommon returns the enabled values of every dictionary in
// CommonDictionaries, keyed by bundle name. Lookups run concurrently.
func (s *Service) GetAllCommon(ctx context.Context) (map[string][]*domain.DictValue, error) {
	out := make(map[string][]*domain.DictValue, len(CommonDictionaries))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for name, code := range CommonDictionaries {
		g.Go(func() error {
			vals, err := s.GetValues(gctx, code)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			out[name] = vals
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
