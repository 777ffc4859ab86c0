package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// CreateValue adds an enabled value at version 1 to an existing dictionary
// and records an ADD history row.
func (s *Service) CreateValue(ctx context.Context, input CreateValueInput, actor string) (*domain.DictValue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	dictCode := strings.TrimSpace(input.DictCode)

	var created *domain.DictValue
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetType(txCtx, dictCode); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("dict_code", "unknown dictionary")
			}
			return fmt.Errorf("get type: %w", err)
		}

		now := s.now()
		var err error
		created, err = s.repo.CreateValue(txCtx, &domain.DictValue{
			DictCode:  dictCode,
			ValueCode: strings.TrimSpace(input.ValueCode),
			ValueName: strings.TrimSpace(input.ValueName),
			Order:     input.Order,
			ExtraData: maps.Clone(input.ExtraData),
			ColorTag:  input.ColorTag,
			Icon:      input.Icon,
			Status:    domain.DictStatusEnabled,
			Version:   1,
			CreatedBy: actor,
			CreatedAt: now,
			UpdatedBy: actor,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create value: %w", err)
		}

		return s.appendHistory(txCtx, created, domain.DictActionAdd, input.Reason, actor, now)
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(dictCode)

	s.log.InfoContext(ctx, "dictionary value created",
		slog.String("dict_code", created.DictCode),
		slog.String("value_code", created.ValueCode),
		slog.String("actor", actor),
	)

	return created, nil
}

// UpdateValue overwrites the mutable fields of a value and bumps its version.
func (s *Service) UpdateValue(ctx context.Context, dictCode, valueCode string, input UpdateValueInput, actor string) (*domain.DictValue, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	var updated *domain.DictValue
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.repo.GetValue(txCtx, dictCode, valueCode)
		if err != nil {
			return fmt.Errorf("get value: %w", err)
		}
		if input.ExpectedVersion != nil && *input.ExpectedVersion != cur.Version {
			return fmt.Errorf("dict value %s/%s: expected version %d, have %d: %w",
				dictCode, valueCode, *input.ExpectedVersion, cur.Version, domain.ErrConflict)
		}

		now := s.now()
		next := *cur
		next.ValueName = strings.TrimSpace(input.ValueName)
		next.Order = input.Order
		next.ExtraData = maps.Clone(input.ExtraData)
		next.ColorTag = input.ColorTag
		next.Icon = input.Icon
		next.Version = cur.Version + 1
		next.UpdatedBy = actor
		next.UpdatedAt = now

		updated, err = s.repo.UpdateValue(txCtx, &next, cur.Version)
		if err != nil {
			return fmt.Errorf("update value: %w", err)
		}

		return s.appendHistory(txCtx, updated, domain.DictActionUpdate, input.Reason, actor, now)
	})
	if err != nil {
		return nil, err
	}

	s.cache.invalidate(dictCode)

	s.log.InfoContext(ctx, "dictionary value updated",
		slog.String("dict_code", dictCode),
		slog.String("value_code", valueCode),
		slog.Int("version", updated.Version),
		slog.String("actor", actor),
	)

	return updated, nil
}

// SetValueStatus enables or disables a value. Setting the status it already
// has is a no-op and writes no history.
func (s *Service) SetValueStatus(ctx context.Context, dictCode, valueCode string, enabled bool, reason, actor string) (*domain.DictValue, error) {
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	status, action := domain.DictStatusDisabled, domain.DictActionDisable
	if enabled {
		status, action = domain.DictStatusEnabled, domain.DictActionEnable
	}

	var (
		result  *domain.DictValue
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.repo.GetValue(txCtx, dictCode, valueCode)
		if err != nil {
			return fmt.Errorf("get value: %w", err)
		}
		if cur.Status == status {
			result = cur
			return nil
		}

		now := s.now()
		next := *cur
		next.Status = status
		next.Version = cur.Version + 1
		next.UpdatedBy = actor
		next.UpdatedAt = now

		result, err = s.repo.UpdateValue(txCtx, &next, cur.Version)
		if err != nil {
			return fmt.Errorf("set status: %w", err)
		}
		changed = true

		return s.appendHistory(txCtx, result, action, reason, actor, now)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.cache.invalidate(dictCode)
		s.log.InfoContext(ctx, "dictionary value status changed",
			slog.String("dict_code", dictCode),
			slog.String("value_code", valueCode),
			slog.String("status", status.String()),
			slog.String("actor", actor),
		)
	}

	return result, nil
}

// GetValueHistory returns the history rows of a value, newest first.
func (s *Service) GetValueHistory(ctx context.Context, dictCode, valueCode string) ([]*domain.DictValueVersion, error) {
	rows, err := s.repo.ListHistory(ctx, dictCode, valueCode)
	if err != nil {
		return nil, fmt.Errorf("list history %s/%s: %w", dictCode, valueCode, err)
	}
	return rows, nil
}

// valueSnapshot is the JSON form of a value in its history rows.
type valueSnapshot struct {
	DictCode  string         `json:"dictCode"`
	ValueCode string         `json:"valueCode"`
	ValueName string         `json:"valueName"`
	Order     int            `json:"order"`
	ExtraData map[string]any `json:"extraData,omitempty"`
	ColorTag  *string        `json:"colorTag,omitempty"`
	Icon      *string        `json:"icon,omitempty"`
	Status    int            `json:"status"`
	Version   int            `json:"version"`
	UpdatedBy string         `json:"updatedBy"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (s *Service) appendHistory(ctx context.Context, v *domain.DictValue, action domain.DictAction, reason, actor string, at time.Time) error {
	blob, err := json.Marshal(valueSnapshot{
		DictCode:  v.DictCode,
		ValueCode: v.ValueCode,
		ValueName: v.ValueName,
		Order:     v.Order,
		ExtraData: v.ExtraData,
		ColorTag:  v.ColorTag,
		Icon:      v.Icon,
		Status:    int(v.Status),
		Version:   v.Version,
		UpdatedBy: v.UpdatedBy,
		UpdatedAt: v.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode value snapshot: %w", err)
	}

	_, err = s.repo.AppendVersion(ctx, &domain.DictValueVersion{
		DictCode:        v.DictCode,
		ValueCode:       v.ValueCode,
		Version:         v.Version,
		Snapshot:        blob,
		Action:          action,
		OperationReason: reason,
		OperatedBy:      actor,
		OperatedAt:      at,
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}
