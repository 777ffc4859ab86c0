package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/petcare-basedata/internal/auth"
	"github.com/heartmarshall/petcare-basedata/internal/config"
	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

const testSecret = "cli-test-secret-cli-test-secret-000"

func memoryConfig() (*config.Config, error) {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
		Auth:     config.AuthConfig{JWTSecret: testSecret, JWTIssuer: "petcare", AccessTokenTTL: time.Hour},
		BaseData: config.BaseDataConfig{RollbackMode: "compat", ConcurrencyGuard: "optimistic", DefaultActor: "system"},
		Dictionary: config.DictionaryConfig{
			CacheSize:         16,
			CacheTTL:          time.Minute,
			CascadeKeys:       map[string]string{"pet_breed": "species"},
			DefaultCascadeKey: "species",
		},
		Log: config.LogConfig{Level: "error", Format: "text"},
	}, nil
}

func run(t *testing.T, load configLoader, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(load)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDict_CascadeJSON(t *testing.T) {
	out, err := run(t, memoryConfig, "dict", "pet_breed", "--parent", "cat", "--format", "json")
	require.NoError(t, err)

	var rows []dictRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows), out)
	require.Len(t, rows, 2)
	assert.Equal(t, "british_shorthair", rows[0].ValueCode)
	assert.Equal(t, "cat", rows[1].ExtraData["species"])
}

func TestDict_Table(t *testing.T) {
	out, err := run(t, memoryConfig, "dict", "pet_species")
	require.NoError(t, err)
	for _, want := range []string{"Code", "dog", "Cat", "other"} {
		assert.Contains(t, out, want)
	}
}

func TestToken_ValidatesWithSameSecret(t *testing.T) {
	out, err := run(t, memoryConfig, "token", "--user-id", "42", "--username", "ops", "--role", "ROLE_ADMIN,ROLE_OPERATOR")
	require.NoError(t, err)

	p, err := auth.NewJWTManager(testSecret, "petcare", time.Hour).ValidateAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.UserID)
	assert.Equal(t, "ops", p.Username)
	assert.Equal(t, []domain.Role{domain.RoleAdmin, domain.RoleOperator}, p.Roles)
}

func TestToken_RejectsUnknownRole(t *testing.T) {
	_, err := run(t, memoryConfig, "token", "--user-id", "1", "--role", "ROLE_WIZARD")
	assert.ErrorContains(t, err, "unknown role")
}

func TestVersions_EmptyLedger(t *testing.T) {
	out, err := run(t, memoryConfig, "versions", "5", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestRollback_Errors(t *testing.T) {
	_, err := run(t, memoryConfig, "rollback", "5", "--version", "1")
	assert.True(t, errors.Is(err, domain.ErrNotFound), "err = %v", err)

	_, err = run(t, memoryConfig, "rollback", "5")
	assert.Error(t, err, "--version is required")

	_, err = run(t, memoryConfig, "rollback", "abc", "--version", "1")
	assert.ErrorContains(t, err, "invalid record id")
}

func TestMigrate_NeedsPostgres(t *testing.T) {
	_, err := run(t, memoryConfig, "migrate")
	assert.ErrorContains(t, err, "postgres")
}

func TestInvalidFormat(t *testing.T) {
	_, err := run(t, memoryConfig, "logs", "1", "--format", "yaml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestConfigErrorIsReported(t *testing.T) {
	failing := func() (*config.Config, error) { return nil, errors.New("no config") }
	_, err := run(t, failing, "dict", "pet_species")
	assert.ErrorContains(t, err, "load config")

	out, err := run(t, failing, "version")
	require.NoError(t, err, "version needs no config")
	assert.Contains(t, out, "dev")
}
