package basedata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Create stores a new record at version 1 with its CREATE snapshot and log
// entry. A duplicate (type, value) is domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, input CreateInput, actor string) (*domain.BaseData, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := validateActor(actor); err != nil {
		return nil, err
	}

	typ := strings.TrimSpace(input.Type)
	value := strings.TrimSpace(input.Value)
	remark := orDefault(input.Remark, RemarkCreate)

	var created *domain.BaseData
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.records.GetByTypeValue(txCtx, typ, value)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("base data %s/%s: %w", typ, value, domain.ErrAlreadyExists)
		}

		now := s.now()
		created, err = s.records.Create(txCtx, &domain.BaseData{
			Type:        typ,
			Value:       value,
			Description: input.Description,
			Version:     1,
			CreatedBy:   actor,
			CreatedAt:   now,
			UpdatedBy:   actor,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}

		return s.record(txCtx, created, created.Version, domain.BaseDataActionCreate, actor, remark, now)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "base data created",
		slog.Int64("record_id", created.ID),
		slog.String("type", created.Type),
		slog.String("actor", actor),
	)

	return created, nil
}
