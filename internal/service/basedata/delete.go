package basedata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Delete writes a DELETE snapshot of the current state and removes the
// record. Deleting a missing record is a no-op. History is kept.
func (s *Service) Delete(ctx context.Context, id int64, actor string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateActor(actor); err != nil {
		return err
	}

	deleted := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.records.GetByID(txCtx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		// The ledger version still advances so versions never repeat.
		if err := s.record(txCtx, cur, cur.NextVersion(), domain.BaseDataActionDelete, actor, "", s.now()); err != nil {
			return err
		}

		if err := s.records.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		s.log.InfoContext(ctx, "base data deleted",
			slog.Int64("record_id", id),
			slog.String("actor", actor),
		)
	}

	return nil
}
