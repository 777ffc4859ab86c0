package basedata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Update overwrites type, value and description and bumps the version.
// Uniqueness of (type, value) is left to storage.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput, actor string) (*domain.BaseData, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	remark := orDefault(input.Remark, RemarkUpdate)

	var updated *domain.BaseData
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.records.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		expected := s.expected(cur)
		if input.ExpectedVersion != nil {
			if *input.ExpectedVersion != cur.Version {
				return fmt.Errorf("base data %d: expected version %d, have %d: %w",
					id, *input.ExpectedVersion, cur.Version, domain.ErrConflict)
			}
			expected = input.ExpectedVersion
		}

		now := s.now()
		next := *cur
		next.Type = strings.TrimSpace(input.Type)
		next.Value = strings.TrimSpace(input.Value)
		next.Description = input.Description
		next.Version = cur.NextVersion()
		next.UpdatedBy = actor
		next.UpdatedAt = now

		updated, err = s.records.Update(txCtx, &next, expected)
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		return s.record(txCtx, updated, updated.Version, domain.BaseDataActionUpdate, actor, remark, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "base data updated",
		slog.Int64("record_id", id),
		slog.Int("version", updated.Version),
		slog.String("actor", actor),
	)

	return updated, nil
}
