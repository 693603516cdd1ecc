package session

// Role is a capability tag attached to a session. The enumeration is closed:
// one tier (admin, manager, employee) per module, plus super admin and the
// e-sign sender tier.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"

	RolePeopleAdmin    Role = "people_admin"
	RolePeopleManager  Role = "people_manager"
	RolePeopleEmployee Role = "people_employee"

	RoleLeaveAdmin    Role = "leave_admin"
	RoleLeaveManager  Role = "leave_manager"
	RoleLeaveEmployee Role = "leave_employee"

	RoleAttendanceAdmin    Role = "attendance_admin"
	RoleAttendanceManager  Role = "attendance_manager"
	RoleAttendanceEmployee Role = "attendance_employee"

	RoleESignAdmin    Role = "esign_admin"
	RoleESignSender   Role = "esign_sender"
	RoleESignEmployee Role = "esign_employee"
)

// AllRoles returns every role in the closed enumeration.
func AllRoles() []Role {
	return []Role{
		RoleSuperAdmin,
		RolePeopleAdmin, RolePeopleManager, RolePeopleEmployee,
		RoleLeaveAdmin, RoleLeaveManager, RoleLeaveEmployee,
		RoleAttendanceAdmin, RoleAttendanceManager, RoleAttendanceEmployee,
		RoleESignAdmin, RoleESignSender, RoleESignEmployee,
	}
}

var validRoles = func() map[Role]struct{} {
	m := make(map[Role]struct{})
	for _, r := range AllRoles() {
		m[r] = struct{}{}
	}
	return m
}()

// IsValid reports whether r belongs to the closed enumeration.
func (r Role) IsValid() bool {
	_, ok := validRoles[r]
	return ok
}

// employeeTierRoles are the roles that grant only self-service access.
var employeeTierRoles = map[Role]struct{}{
	RolePeopleEmployee:     {},
	RoleLeaveEmployee:      {},
	RoleAttendanceEmployee: {},
	RoleESignEmployee:      {},
}

// RoleSet is an unordered, duplicate-free set of roles.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles. Unknown tags are dropped:
// missing or garbled role data must fail closed, never widen access.
func NewRoleSet(roles ...Role) RoleSet {
	s := make(RoleSet, len(roles))
	for _, r := range roles {
		if r.IsValid() {
			s[r] = struct{}{}
		}
	}
	return s
}

// ParseRoleSet builds a RoleSet from raw string tags, dropping unknown ones.
func ParseRoleSet(tags []string) RoleSet {
	s := make(RoleSet, len(tags))
	for _, t := range tags {
		r := Role(t)
		if r.IsValid() {
			s[r] = struct{}{}
		}
	}
	return s
}

// Has reports whether the set contains r.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// HasAny reports whether the set contains at least one of the given roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// IsEmployeeTierOnly reports whether every role in the set is an
// employee-tier role. An empty set is not employee-tier-only.
func (s RoleSet) IsEmployeeTierOnly() bool {
	if len(s) == 0 {
		return false
	}
	for r := range s {
		if _, ok := employeeTierRoles[r]; !ok {
			return false
		}
	}
	return true
}

// Strings returns the role tags as plain strings, for claim encoding.
func (s RoleSet) Strings() []string {
	out := make([]string, 0, len(s))
	for r := range s {
		out = append(out, string(r))
	}
	return out
}

// LoginMethod identifies how the session was established.
type LoginMethod string

const (
	LoginMethodPassword LoginMethod = "password"
	LoginMethodGoogle   LoginMethod = "google"
)

// Session is the read-only view of an authenticated user this core consumes.
// It is populated by the auth collaborator and never mutated here.
type Session struct {
	UserID      string
	EmployeeID  *string
	CompanyID   string
	Roles       RoleSet
	LoginMethod LoginMethod
}

// IsElevated reports whether the session may run the post-save
// completeness redirect (super admin or people admin).
func (s Session) IsElevated() bool {
	return s.Roles.HasAny(RoleSuperAdmin, RolePeopleAdmin)
}
