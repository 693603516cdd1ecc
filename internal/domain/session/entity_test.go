package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoleSet_DropsUnknownTags(t *testing.T) {
	s := ParseRoleSet([]string{"super_admin", "leave_employee", "owner", ""})
	assert.Len(t, s, 2)
	assert.True(t, s.Has(RoleSuperAdmin))
	assert.True(t, s.Has(RoleLeaveEmployee))
	assert.False(t, s.Has(Role("owner")))
}

func TestRoleSet_HasAny(t *testing.T) {
	s := NewRoleSet(RolePeopleManager)
	assert.True(t, s.HasAny(RolePeopleAdmin, RolePeopleManager))
	assert.False(t, s.HasAny(RolePeopleAdmin, RoleSuperAdmin))
	assert.False(t, s.HasAny())
}

func TestIsEmployeeTierOnly(t *testing.T) {
	assert.True(t, NewRoleSet(RoleLeaveEmployee, RoleAttendanceEmployee).IsEmployeeTierOnly())
	assert.False(t, NewRoleSet(RoleLeaveEmployee, RoleLeaveManager).IsEmployeeTierOnly())
	assert.False(t, NewRoleSet(RoleSuperAdmin).IsEmployeeTierOnly())

	// Missing role data must not count as employee-tier.
	assert.False(t, RoleSet{}.IsEmployeeTierOnly())
	assert.False(t, RoleSet(nil).IsEmployeeTierOnly())
}

func TestIsElevated(t *testing.T) {
	assert.True(t, Session{Roles: NewRoleSet(RoleSuperAdmin)}.IsElevated())
	assert.True(t, Session{Roles: NewRoleSet(RolePeopleAdmin)}.IsElevated())
	assert.False(t, Session{Roles: NewRoleSet(RolePeopleManager, RoleLeaveAdmin)}.IsElevated())
	assert.False(t, Session{}.IsElevated())
}
