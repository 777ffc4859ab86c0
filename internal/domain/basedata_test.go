package domain

import (
	"testing"
	"time"
)

func TestBaseData_NextVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		version int
		want    int
	}{
		{"legacy row without version", 0, 2},
		{"first version", 1, 2},
		{"later version", 7, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := BaseData{Version: tt.version}
			if got := b.NextVersion(); got != tt.want {
				t.Errorf("NextVersion() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBaseData_IsDisabled(t *testing.T) {
	t.Parallel()

	var b BaseData
	if b.IsDisabled() {
		t.Fatal("zero record should be active")
	}
	now := time.Now()
	b.DisabledAt = &now
	if !b.IsDisabled() {
		t.Fatal("record with DisabledAt should be disabled")
	}
}

func TestDictValue_ExtraString(t *testing.T) {
	t.Parallel()

	v := DictValue{ExtraData: map[string]any{"species": "dog", "weight": 12.5}}

	if got, ok := v.ExtraString("species"); !ok || got != "dog" {
		t.Errorf("ExtraString(species) = %q, %v; want dog, true", got, ok)
	}
	if _, ok := v.ExtraString("weight"); ok {
		t.Error("ExtraString(weight) should not match a number")
	}
	if _, ok := (DictValue{}).ExtraString("species"); ok {
		t.Error("nil extra data should not match")
	}
}

func TestPrincipal_Roles(t *testing.T) {
	t.Parallel()

	p := Principal{UserID: 7, Roles: []Role{RoleUser, RoleOperator}}

	if !p.HasRole(RoleOperator) {
		t.Error("expected HasRole(RoleOperator)")
	}
	if p.IsAdmin() {
		t.Error("principal is not admin")
	}
	if !p.HasAnyRole(RoleAdmin, RoleUser) {
		t.Error("expected HasAnyRole to match RoleUser")
	}
	if Role("ROLE_ROOT").IsValid() {
		t.Error("unknown role should be invalid")
	}
}
