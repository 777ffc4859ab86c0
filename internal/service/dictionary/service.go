// Package dictionary serves the typed lookup catalogs (species, breeds,
// genders, service kinds) behind dropdowns and reference validation.
package dictionary

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type dictRepo interface {
	ListTypes(ctx context.Context) ([]*domain.DictType, error)
	GetType(ctx context.Context, dictCode string) (*domain.DictType, error)
	ListActive(ctx context.Context, dictCode string) ([]*domain.DictValue, error)
	ListActiveByExtra(ctx context.Context, dictCode, key, want string) ([]*domain.DictValue, error)
	GetValue(ctx context.Context, dictCode, valueCode string) (*domain.DictValue, error)
	GetValues(ctx context.Context, keys []domain.DictKey) ([]*domain.DictValue, error)
	CreateValue(ctx context.Context, v *domain.DictValue) (*domain.DictValue, error)
	UpdateValue(ctx context.Context, v *domain.DictValue, expectedVersion int) (*domain.DictValue, error)
	AppendVersion(ctx context.Context, v *domain.DictValueVersion) (*domain.DictValueVersion, error)
	ListHistory(ctx context.Context, dictCode, valueCode string) ([]*domain.DictValueVersion, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CommonDictionaries maps the names of the all-common bundle to dictionary
// codes.
var CommonDictionaries = map[string]string{
	"petSpecies":     "pet_species",
	"petGender":      "pet_gender",
	"petSize":        "pet_size",
	"medicalService": "medical_service",
	"fosterService":  "foster_service",
	"beautyService":  "beauty_service",
	"merchantType":   "merchant_type",
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements dictionary lookups and admin writes.
type Service struct {
	log   *slog.Logger
	repo  dictRepo
	tx    txManager
	cache *valueCache
	cfg   config.DictionaryConfig
	now   func() time.Time
}

// NewService creates a new dictionary service. cfg must have been validated
// so that CascadeKeys is populated.
func NewService(
	logger *slog.Logger,
	repo dictRepo,
	tx txManager,
	cfg config.DictionaryConfig,
) *Service {
	if cfg.CascadeKeys == nil {
		cfg.CascadeKeys = map[string]string{}
	}
	return &Service{
		log:   logger.With("service", "dictionary"),
		repo:  repo,
		tx:    tx,
		cache: newValueCache(cfg.CacheSize, cfg.CacheTTL),
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// cascadeKey returns the extra-data key linking dictCode to its parent.
func (s *Service) cascadeKey(dictCode string) string {
	if key, ok := s.cfg.CascadeKeys[dictCode]; ok {
		return key
	}
	return s.cfg.DefaultCascadeKey
}
