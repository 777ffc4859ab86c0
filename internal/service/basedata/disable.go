package basedata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Disable stamps disabledAt and bumps the version. Disabling twice
// re-stamps. There is no enable.
func (s *Service) Disable(ctx context.Context, id int64, actor string) (*domain.BaseData, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	var disabled *domain.BaseData
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.records.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		now := s.now()
		next := *cur
		next.DisabledAt = &now
		next.Version = cur.NextVersion()
		next.UpdatedBy = actor
		next.UpdatedAt = now

		disabled, err = s.records.Update(txCtx, &next, s.expected(cur))
		if err != nil {
			return fmt.Errorf("disable record: %w", err)
		}

		return s.record(txCtx, disabled, disabled.Version, domain.BaseDataActionDisable, actor, "", now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "base data disabled",
		slog.Int64("record_id", id),
		slog.String("actor", actor),
	)

	return disabled, nil
}
