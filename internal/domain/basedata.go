package domain

import "time"

// BaseData is the generic admin-managed catalog record (type + value +
// description) underlying dropdown-style reference data.
type BaseData struct {
	ID          int64
	Type        string
	Value       string
	Description string
	// Version starts at 1. Zero means the row predates versioning (NULL in storage).
	Version    int
	DisabledAt *time.Time
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedBy  string
	UpdatedAt  time.Time
}

// IsDisabled reports whether the record has been logically disabled.
func (b BaseData) IsDisabled() bool {
	return b.DisabledAt != nil
}

// NextVersion returns the version a mutation should assign.
// Rows without a version are treated as version 1.
func (b BaseData) NextVersion() int {
	if b.Version <= 0 {
		return 2
	}
	return b.Version + 1
}

// BaseDataVersion is an immutable ledger row holding a full snapshot of a
// record at the moment of a mutating action. RecordID is a plain reference:
// the record may have been deleted since.
type BaseDataVersion struct {
	ID            int64
	RecordID      int64
	Version       int
	Snapshot      []byte
	SchemaVersion int
	Action        BaseDataAction
	OperatedBy    string
	OperatedAt    time.Time
	Remark        string
}

// BaseDataLog is an append-only, human-facing audit entry for a record.
type BaseDataLog struct {
	ID         int64
	RecordID   int64
	Action     BaseDataAction
	Detail     string
	OperatedBy string
	OperatedAt time.Time
}
