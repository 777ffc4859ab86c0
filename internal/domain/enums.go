package domain

// BaseDataAction identifies the mutating action recorded in the version
// ledger and the audit log of a base-data record.
type BaseDataAction string

const (
	BaseDataActionCreate   BaseDataAction = "CREATE"
	BaseDataActionUpdate   BaseDataAction = "UPDATE"
	BaseDataActionDisable  BaseDataAction = "DISABLE"
	BaseDataActionDelete   BaseDataAction = "DELETE"
	BaseDataActionRollback BaseDataAction = "ROLLBACK"
)

func (a BaseDataAction) String() string { return string(a) }

func (a BaseDataAction) IsValid() bool {
	switch a {
	case BaseDataActionCreate, BaseDataActionUpdate, BaseDataActionDisable,
		BaseDataActionDelete, BaseDataActionRollback:
		return true
	}
	return false
}

// DictAction identifies a change recorded in the dictionary value history.
type DictAction string

const (
	DictActionAdd     DictAction = "ADD"
	DictActionUpdate  DictAction = "UPDATE"
	DictActionDisable DictAction = "DISABLE"
	DictActionEnable  DictAction = "ENABLE"
)

func (a DictAction) String() string { return string(a) }

func (a DictAction) IsValid() bool {
	switch a {
	case DictActionAdd, DictActionUpdate, DictActionDisable, DictActionEnable:
		return true
	}
	return false
}

// DictStatus is the enabled flag of a dictionary row, stored as 1/0.
type DictStatus int

const (
	DictStatusDisabled DictStatus = 0
	DictStatusEnabled  DictStatus = 1
)

func (s DictStatus) IsValid() bool {
	return s == DictStatusDisabled || s == DictStatusEnabled
}

func (s DictStatus) String() string {
	if s == DictStatusEnabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// RollbackMode selects how a rollback numbers the restored version.
type RollbackMode string

const (
	// RollbackModeCompat reuses the target version number.
	RollbackModeCompat RollbackMode = "compat"
	// RollbackModeIncrement assigns max(known versions)+1.
	RollbackModeIncrement RollbackMode = "increment"
)

func (m RollbackMode) String() string { return string(m) }

func (m RollbackMode) IsValid() bool {
	return m == RollbackModeCompat || m == RollbackModeIncrement
}

// ConcurrencyGuard selects how read-modify-write spans are protected.
type ConcurrencyGuard string

const (
	ConcurrencyGuardOptimistic ConcurrencyGuard = "optimistic"
	ConcurrencyGuardNone       ConcurrencyGuard = "none"
)

func (g ConcurrencyGuard) String() string { return string(g) }

func (g ConcurrencyGuard) IsValid() bool {
	return g == ConcurrencyGuardOptimistic || g == ConcurrencyGuardNone
}
