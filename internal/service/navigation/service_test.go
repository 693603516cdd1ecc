package navigation

import (
	"testing"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/navigation"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, in navigation.ResolveInput) []navigation.ResolvedRoute {
	t.Helper()
	return NewNavigationService(navigation.Registry()).Resolve(in)
}

func findRoute(routes []navigation.ResolvedRoute, id navigation.RouteID) *navigation.ResolvedRoute {
	for i := range routes {
		if routes[i].ID == id {
			return &routes[i]
		}
	}
	return nil
}

func TestResolve_Deterministic(t *testing.T) {
	in := navigation.ResolveInput{
		Roles: session.NewRoleSet(
			session.RoleSuperAdmin,
			session.RoleLeaveEmployee,
			session.RoleAttendanceManager,
		),
		Enterprise:   true,
		LoginMethod:  session.LoginMethodPassword,
		ESignEnabled: true,
	}

	first := resolve(t, in)
	second := resolve(t, in)
	assert.Equal(t, first, second)
}

func TestResolve_EmptyRoles_HidesEverything(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.RoleSet{},
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Empty(t, routes)
}

func TestResolve_NilRoles_FailsClosed(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Empty(t, routes)
}

// Plain people employee collapses People to a direct Directory link.
func TestResolve_PeopleEmployeeOnly_DirectoryLink(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RolePeopleEmployee),
		LoginMethod: session.LoginMethodPassword,
	})

	people := findRoute(routes, navigation.RoutePeopleDirectory)
	require.NotNil(t, people)
	assert.False(t, people.HasSubTree)
	assert.Empty(t, people.SubTree)
	assert.Equal(t, "/people/directory", people.URL)

	assert.Nil(t, findRoute(routes, navigation.RoutePeople))
}

// Attendance admin plus leave employee with e-sign off: Sign is absent and
// Timesheet keeps its full subtree.
func TestResolve_AttendanceAdminLeaveEmployee_ESignOff(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles: session.NewRoleSet(
			session.RoleAttendanceAdmin,
			session.RoleLeaveEmployee,
		),
		LoginMethod:  session.LoginMethodPassword,
		ESignEnabled: false,
	})

	assert.Nil(t, findRoute(routes, navigation.RouteSign))
	assert.Nil(t, findRoute(routes, navigation.RouteSignInbox))

	timesheet := findRoute(routes, navigation.RouteTimesheet)
	require.NotNil(t, timesheet)
	assert.True(t, timesheet.HasSubTree)
	assert.Len(t, timesheet.SubTree, 3)
}

func TestResolve_TimesheetHiddenWithoutAttendanceRoles(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RolePeopleAdmin),
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Nil(t, findRoute(routes, navigation.RouteTimesheet))
	assert.Nil(t, findRoute(routes, navigation.RouteTimesheetMy))
}

func TestResolve_TimesheetNarrowedForPlainEmployee(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleAttendanceEmployee),
		LoginMethod: session.LoginMethodPassword,
	})

	my := findRoute(routes, navigation.RouteTimesheetMy)
	require.NotNil(t, my)
	assert.False(t, my.HasSubTree)
	assert.Equal(t, "/timesheet/my", my.URL)
}

// A leave employee who manages another module gets Leave collapsed to a
// renamed direct link.
func TestResolve_LeaveRenamedForCrossModuleManager(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles: session.NewRoleSet(
			session.RoleLeaveEmployee,
			session.RolePeopleManager,
		),
		LoginMethod: session.LoginMethodPassword,
	})

	leave := findRoute(routes, navigation.RouteLeaveRequests)
	require.NotNil(t, leave)
	assert.Equal(t, "My Requests", leave.Name)
	assert.False(t, leave.HasSubTree)
}

// Leave is gated on the leave employee tag: a leave manager or admin
// without it does not see the module at all.
func TestResolve_LeaveHiddenWithoutEmployeeTag(t *testing.T) {
	for _, role := range []session.Role{session.RoleLeaveManager, session.RoleLeaveAdmin} {
		routes := resolve(t, navigation.ResolveInput{
			Roles:       session.NewRoleSet(role),
			LoginMethod: session.LoginMethodPassword,
		})
		assert.Nil(t, findRoute(routes, navigation.RouteLeave), string(role))
		assert.Nil(t, findRoute(routes, navigation.RouteLeaveRequests), string(role))
	}
}

func TestResolve_LeaveFullSubtreeForLeaveManager(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleLeaveManager, session.RoleLeaveEmployee),
		LoginMethod: session.LoginMethodPassword,
	})

	leave := findRoute(routes, navigation.RouteLeave)
	require.NotNil(t, leave)
	assert.True(t, leave.HasSubTree)
	assert.Len(t, leave.SubTree, 3)
}

func TestResolve_DashboardDirectLinkForPlainLeaveEmployee(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleLeaveEmployee),
		LoginMethod: session.LoginMethodPassword,
	})

	dash := findRoute(routes, navigation.RouteDashboard)
	require.NotNil(t, dash)
	assert.False(t, dash.HasSubTree)
}

func TestResolve_DashboardHiddenWithoutQualifyingRoles(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleESignSender),
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Nil(t, findRoute(routes, navigation.RouteDashboard))
}

func TestResolve_SignNarrowedToInboxForESignEmployee(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:        session.NewRoleSet(session.RoleESignEmployee),
		LoginMethod:  session.LoginMethodPassword,
		ESignEnabled: true,
	})

	inbox := findRoute(routes, navigation.RouteSignInbox)
	require.NotNil(t, inbox)
	assert.False(t, inbox.HasSubTree)
}

func TestResolve_SignFullSubtreeForSender(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:        session.NewRoleSet(session.RoleESignSender),
		LoginMethod:  session.LoginMethodPassword,
		ESignEnabled: true,
	})

	sign := findRoute(routes, navigation.RouteSign)
	require.NotNil(t, sign)
	assert.True(t, sign.HasSubTree)
	// Templates requires the e-sign admin role.
	assert.Nil(t, findRoute(sign.SubTree, navigation.RouteSignTemplates))
}

// Settings is hidden for employee-tier-only sessions established through
// the federated provider.
func TestResolve_SettingsHiddenForFederatedEmployeeTier(t *testing.T) {
	roles := session.NewRoleSet(session.RoleLeaveEmployee, session.RoleAttendanceEmployee)

	google := resolve(t, navigation.ResolveInput{
		Roles:       roles,
		LoginMethod: session.LoginMethodGoogle,
	})
	assert.Nil(t, findRoute(google, navigation.RouteSettings))
	assert.Nil(t, findRoute(google, navigation.RouteSettingsAccount))

	password := resolve(t, navigation.ResolveInput{
		Roles:       roles,
		LoginMethod: session.LoginMethodPassword,
	})
	account := findRoute(password, navigation.RouteSettingsAccount)
	require.NotNil(t, account)
	assert.False(t, account.HasSubTree)
}

func TestResolve_SettingsFullSubtreeForSuperAdmin(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleSuperAdmin),
		Enterprise:  true,
		LoginMethod: session.LoginMethodPassword,
	})

	settings := findRoute(routes, navigation.RouteSettings)
	require.NotNil(t, settings)
	assert.True(t, settings.HasSubTree)
	assert.NotNil(t, findRoute(settings.SubTree, navigation.RouteSettingsBilling))
}

func TestResolve_BillingDroppedOutsideEnterprise(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleSuperAdmin),
		Enterprise:  false,
		LoginMethod: session.LoginMethodPassword,
	})

	settings := findRoute(routes, navigation.RouteSettings)
	require.NotNil(t, settings)
	assert.Nil(t, findRoute(settings.SubTree, navigation.RouteSettingsBilling))
	assert.NotNil(t, findRoute(settings.SubTree, navigation.RouteSettingsCompany))
}

func TestResolve_ConfigurationsSuperAdminOnly(t *testing.T) {
	admin := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleSuperAdmin, session.RoleAttendanceEmployee),
		LoginMethod: session.LoginMethodPassword,
	})
	configs := findRoute(admin, navigation.RouteConfigurations)
	require.NotNil(t, configs)
	assert.Len(t, configs.SubTree, 3)

	others := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RolePeopleAdmin),
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Nil(t, findRoute(others, navigation.RouteConfigurations))
}

func TestResolve_ConfigAttendanceDroppedWithoutAttendanceEmployee(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RoleSuperAdmin),
		LoginMethod: session.LoginMethodPassword,
	})

	configs := findRoute(routes, navigation.RouteConfigurations)
	require.NotNil(t, configs)
	assert.Nil(t, findRoute(configs.SubTree, navigation.RouteConfigAttendance))
	assert.Len(t, configs.SubTree, 2)
}

// An expandable group whose subtree filters to nothing never renders.
func TestResolve_EmptySubtreeSuppression(t *testing.T) {
	registry := []navigation.RouteNode{
		{
			ID:            navigation.RouteID("reports"),
			Name:          "Reports",
			URL:           "/reports",
			RequiredRoles: []session.Role{session.RolePeopleAdmin},
			SubTree: []navigation.RouteNode{
				{
					ID:            navigation.RouteID("reports.export"),
					Name:          "Export",
					URL:           "/reports/export",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
			},
		},
	}

	routes := NewNavigationService(registry).Resolve(navigation.ResolveInput{
		Roles:       session.NewRoleSet(session.RolePeopleAdmin),
		LoginMethod: session.LoginMethodPassword,
	})
	assert.Empty(t, routes)
}

func TestResolve_PreservesRegistryOrder(t *testing.T) {
	routes := resolve(t, navigation.ResolveInput{
		Roles: session.NewRoleSet(
			session.RoleSuperAdmin,
			session.RolePeopleManager,
			session.RoleAttendanceManager,
			session.RoleLeaveManager,
			session.RoleLeaveEmployee,
		),
		Enterprise:  true,
		LoginMethod: session.LoginMethodPassword,
	})

	var ids []navigation.RouteID
	for _, r := range routes {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []navigation.RouteID{
		navigation.RouteDashboard,
		navigation.RoutePeople,
		navigation.RouteTimesheet,
		navigation.RouteLeave,
		navigation.RouteSettings,
		navigation.RouteConfigurations,
	}, ids)
}
