// Package authz decides whether a principal may perform an operation.
// Handlers call Authorize before invoking a service.
package authz

import (
	"fmt"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

// Operation names an authorizable action.
type Operation string

const (
	OpBaseDataList       Operation = "basedata.list"
	OpBaseDataListByType Operation = "basedata.list_by_type"
	OpBaseDataGet        Operation = "basedata.get"
	OpBaseDataCreate     Operation = "basedata.create"
	OpBaseDataUpdate     Operation = "basedata.update"
	OpBaseDataDisable    Operation = "basedata.disable"
	OpBaseDataDelete     Operation = "basedata.delete"
	OpBaseDataVersions   Operation = "basedata.versions"
	OpBaseDataLogs       Operation = "basedata.logs"
	OpBaseDataRollback   Operation = "basedata.rollback"

	OpDictRead    Operation = "dict.read"
	OpDictWrite   Operation = "dict.write"
	OpDictHistory Operation = "dict.history"
)

// Resource is the target of an operation. OwnerID is zero when the resource
// has no owner.
type Resource struct {
	Kind    string
	ID      string
	OwnerID int64
}

// Rule grants an operation.
type Rule struct {
	// Public operations need no principal.
	Public bool
	// Authenticated grants any principal.
	Authenticated bool
	// Roles grants principals holding at least one of them.
	Roles []domain.Role
	// Owner grants the principal whose ID equals Resource.OwnerID.
	Owner bool
}

// Policy maps operations to rules. Operations missing from it are denied.
type Policy map[Operation]Rule

var adminOnly = Rule{Roles: []domain.Role{domain.RoleAdmin}}

// DefaultPolicy is the platform policy.
var DefaultPolicy = Policy{
	OpBaseDataList:       adminOnly,
	OpBaseDataListByType: {Authenticated: true},
	OpBaseDataGet:        adminOnly,
	OpBaseDataCreate:     adminOnly,
	OpBaseDataUpdate:     adminOnly,
	OpBaseDataDisable:    adminOnly,
	OpBaseDataDelete:     adminOnly,
	OpBaseDataVersions:   adminOnly,
	OpBaseDataLogs:       adminOnly,
	OpBaseDataRollback:   adminOnly,

	OpDictRead:    {Public: true},
	OpDictWrite:   {Roles: []domain.Role{domain.RoleAdmin, domain.RoleDataManager}},
	OpDictHistory: {Roles: []domain.Role{domain.RoleAdmin, domain.RoleDataManager}},
}

// Authorize checks op against DefaultPolicy. A nil principal is anonymous.
func Authorize(p *domain.Principal, op Operation, res Resource) error {
	return DefaultPolicy.Authorize(p, op, res)
}

// Authorize returns nil when p may perform op on res, domain.ErrUnauthorized
// when a principal is required but missing, and domain.ErrForbidden
// otherwise.
func (pol Policy) Authorize(p *domain.Principal, op Operation, res Resource) error {
	rule, ok := pol[op]
	if !ok {
		return fmt.Errorf("operation %s: %w", op, domain.ErrForbidden)
	}
	if rule.Public {
		return nil
	}
	if p == nil || p.UserID <= 0 {
		return fmt.Errorf("operation %s: %w", op, domain.ErrUnauthorized)
	}
	if rule.Authenticated {
		return nil
	}
	if rule.Owner && res.OwnerID != 0 && res.OwnerID == p.UserID {
		return nil
	}
	if p.HasAnyRole(rule.Roles...) {
		return nil
	}
	return fmt.Errorf("operation %s on %s: %w", op, res.Kind, domain.ErrForbidden)
}
