package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("database.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Database.Driver)
	}

	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}

	if err := c.BaseData.validate(); err != nil {
		return fmt.Errorf("basedata: %w", err)
	}

	return nil
}

func (d *DictionaryConfig) validate() error {
	if d.CacheSize <= 0 {
		return fmt.Errorf("cache_size must be > 0 (got %d)", d.CacheSize)
	}
	if d.CacheTTL <= 0 {
		return fmt.Errorf("cache_ttl must be > 0 (got %v)", d.CacheTTL)
	}
	if strings.TrimSpace(d.DefaultCascadeKey) == "" {
		return fmt.Errorf("default_cascade_key is required")
	}

	keys, err := ParseCascadeKeys(d.CascadeKeysRaw)
	if err != nil {
		return fmt.Errorf("cascade_keys: %w", err)
	}
	d.CascadeKeys = keys

	return nil
}

func (b *BaseDataConfig) validate() error {
	if !b.Mode().IsValid() {
		return fmt.Errorf("rollback_mode must be compat or increment (got %q)", b.RollbackMode)
	}
	if !b.Guard().IsValid() {
		return fmt.Errorf("concurrency_guard must be optimistic or none (got %q)", b.ConcurrencyGuard)
	}
	if b.ActorSource != ActorSourceHeader && b.ActorSource != ActorSourcePrincipal {
		return fmt.Errorf("actor_source must be header or principal (got %q)", b.ActorSource)
	}
	if strings.TrimSpace(b.ActorHeader) == "" {
		return fmt.Errorf("actor_header is required")
	}
	if strings.TrimSpace(b.DefaultActor) == "" {
		return fmt.Errorf("default_actor is required")
	}
	return nil
}

// ParseCascadeKeys parses a comma-separated list of dictCode=key pairs
// (e.g. "pet_breed=species,city=province") into a map. An empty string
// returns an empty map.
func ParseCascadeKeys(raw string) (map[string]string, error) {
	keys := make(map[string]string)

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return keys, nil
	}

	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		code, key, ok := strings.Cut(p, "=")
		code, key = strings.TrimSpace(code), strings.TrimSpace(key)
		if !ok || code == "" || key == "" {
			return nil, fmt.Errorf("invalid pair %q, want dict_code=key", p)
		}
		keys[code] = key
	}

	return keys, nil
}
