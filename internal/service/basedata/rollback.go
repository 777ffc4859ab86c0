package basedata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Rollback restores the fields captured in the snapshot of targetVersion
// (the newest one written, if the version repeats). In compat mode the
// record takes targetVersion as its version; in increment mode it takes one
// past the highest version known to the ledger or the record.
func (s *Service) Rollback(ctx context.Context, id int64, targetVersion int, actor string) (*domain.BaseData, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	if targetVersion <= 0 {
		return nil, domain.NewValidationError("version", "must be positive")
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	var restored *domain.BaseData
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cur, err := s.records.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		snap, err := s.versions.GetByRecordVersion(txCtx, id, targetVersion)
		if err != nil {
			return fmt.Errorf("get version %d: %w", targetVersion, err)
		}

		next, _, err := decodeSnapshot(snap.Snapshot)
		if err != nil {
			return fmt.Errorf("base data %d version %d: %w", id, targetVersion, err)
		}

		version := targetVersion
		if s.opts.RollbackMode == domain.RollbackModeIncrement {
			ledgerMax, err := s.versions.MaxVersion(txCtx, id)
			if err != nil {
				return fmt.Errorf("max version: %w", err)
			}
			version = max(ledgerMax, cur.Version) + 1
		}

		now := s.now()
		next.ID = id
		next.Version = version
		next.UpdatedBy = actor
		next.UpdatedAt = now

		restored, err = s.records.Update(txCtx, next, s.expected(cur))
		if err != nil {
			return fmt.Errorf("restore record: %w", err)
		}

		remark := fmt.Sprintf("rolled back to version %d", targetVersion)
		return s.record(txCtx, restored, restored.Version, domain.BaseDataActionRollback, actor, remark, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "base data rolled back",
		slog.Int64("record_id", id),
		slog.Int("target_version", targetVersion),
		slog.Int("version", restored.Version),
		slog.String("mode", s.opts.RollbackMode.String()),
		slog.String("actor", actor),
	)

	return restored, nil
}
