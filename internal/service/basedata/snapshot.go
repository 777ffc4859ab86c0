package basedata

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// snapshotSchema is the schema tag written with every new snapshot. Blobs
// without an envelope are schema 0.
const snapshotSchema = 1

type snapshotRecord struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Value       string     `json:"value"`
	Description string     `json:"description"`
	Version     *int       `json:"version"`
	DisabledAt  *time.Time `json:"disabledAt"`
	CreatedBy   string     `json:"createdBy"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedBy   string     `json:"updatedBy"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type snapshotEnvelope struct {
	Schema *int            `json:"schema"`
	Record json.RawMessage `json:"record"`
}

func encodeSnapshot(rec *domain.BaseData) ([]byte, int, error) {
	sr := snapshotRecord{
		ID:          rec.ID,
		Type:        rec.Type,
		Value:       rec.Value,
		Description: rec.Description,
		DisabledAt:  rec.DisabledAt,
		CreatedBy:   rec.CreatedBy,
		CreatedAt:   rec.CreatedAt,
		UpdatedBy:   rec.UpdatedBy,
		UpdatedAt:   rec.UpdatedAt,
	}
	if rec.Version > 0 {
		v := rec.Version
		sr.Version = &v
	}

	body, err := json.Marshal(sr)
	if err != nil {
		return nil, 0, fmt.Errorf("encode snapshot: %w", err)
	}
	schema := snapshotSchema
	blob, err := json.Marshal(snapshotEnvelope{Schema: &schema, Record: body})
	if err != nil {
		return nil, 0, fmt.Errorf("encode snapshot: %w", err)
	}
	return blob, snapshotSchema, nil
}

// decodeSnapshot reads a tagged envelope or a bare legacy record. Anything
// else, including a record without a type, is domain.ErrSnapshotCorrupt.
func decodeSnapshot(blob []byte) (*domain.BaseData, int, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}

	schema := 0
	body := blob
	if env.Schema != nil && len(env.Record) > 0 {
		schema = *env.Schema
		body = env.Record
	}
	if schema > snapshotSchema {
		return nil, 0, fmt.Errorf("%w: unknown schema %d", domain.ErrSnapshotCorrupt, schema)
	}

	var sr snapshotRecord
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrSnapshotCorrupt, err)
	}
	if sr.Type == "" || sr.Value == "" {
		return nil, 0, fmt.Errorf("%w: missing type or value", domain.ErrSnapshotCorrupt)
	}

	rec := &domain.BaseData{
		ID:          sr.ID,
		Type:        sr.Type,
		Value:       sr.Value,
		Description: sr.Description,
		DisabledAt:  sr.DisabledAt,
		CreatedBy:   sr.CreatedBy,
		CreatedAt:   sr.CreatedAt,
		UpdatedBy:   sr.UpdatedBy,
		UpdatedAt:   sr.UpdatedAt,
	}
	if sr.Version != nil {
		rec.Version = *sr.Version
	}
	return rec, schema, nil
}
