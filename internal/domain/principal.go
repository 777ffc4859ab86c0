package domain

import "slices"

// Role is a platform role tag carried by an authenticated principal.
type Role string

const (
	RoleUser             Role = "ROLE_USER"
	RoleMerchantHospital Role = "ROLE_MERCHANT_HOSPITAL"
	RoleMerchantHouse    Role = "ROLE_MERCHANT_HOUSE"
	RoleMerchantGoods    Role = "ROLE_MERCHANT_GOODS"
	RoleAdmin            Role = "ROLE_ADMIN"
	RoleDataManager      Role = "ROLE_DATA_MANAGER"
	RoleOperator         Role = "ROLE_OPERATOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleMerchantHospital, RoleMerchantHouse, RoleMerchantGoods,
		RoleAdmin, RoleDataManager, RoleOperator:
		return true
	}
	return false
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID   int64
	Username string
	Roles    []Role
}

// HasRole reports whether the principal carries role r.
func (p Principal) HasRole(r Role) bool {
	return slices.Contains(p.Roles, r)
}

// HasAnyRole reports whether the principal carries at least one of roles.
func (p Principal) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (p Principal) IsAdmin() bool {
	return p.HasRole(RoleAdmin)
}
