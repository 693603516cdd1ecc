package navigation

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// Registry returns the static navigation tree in render order. Resolution
// never re-sorts it.
func Registry() []RouteNode {
	return []RouteNode{
		{
			ID:   RouteDashboard,
			Name: "Dashboard",
			URL:  "/dashboard",
			Icon: "dashboard",
			RequiredRoles: []session.Role{
				session.RoleLeaveEmployee,
				session.RolePeopleManager,
				session.RoleAttendanceManager,
			},
			SubTree: []RouteNode{
				{
					ID:            RouteDashboardPeople,
					Name:          "People Dashboard",
					URL:           "/dashboard/people",
					RequiredRoles: []session.Role{session.RolePeopleManager, session.RolePeopleAdmin},
				},
				{
					ID:            RouteDashboardLeave,
					Name:          "Leave Dashboard",
					URL:           "/dashboard/leave",
					RequiredRoles: []session.Role{session.RoleLeaveManager, session.RoleLeaveAdmin},
				},
				{
					ID:            RouteDashboardAttendance,
					Name:          "Attendance Dashboard",
					URL:           "/dashboard/attendance",
					RequiredRoles: []session.Role{session.RoleAttendanceManager, session.RoleAttendanceAdmin},
				},
			},
		},
		{
			ID:   RoutePeople,
			Name: "People",
			URL:  "/people",
			Icon: "people",
			RequiredRoles: []session.Role{
				session.RolePeopleEmployee,
				session.RolePeopleManager,
				session.RolePeopleAdmin,
			},
			SubTree: []RouteNode{
				{
					ID:   RoutePeopleDirectory,
					Name: "Directory",
					URL:  "/people/directory",
					RequiredRoles: []session.Role{
						session.RolePeopleEmployee,
						session.RolePeopleManager,
						session.RolePeopleAdmin,
					},
				},
				{
					ID:            RoutePeopleApprovals,
					Name:          "Approvals",
					URL:           "/people/approvals",
					RequiredRoles: []session.Role{session.RolePeopleManager, session.RolePeopleAdmin},
				},
				{
					ID:            RoutePeopleBulkImport,
					Name:          "Bulk Import",
					URL:           "/people/bulk-import",
					RequiredRoles: []session.Role{session.RolePeopleAdmin},
				},
			},
		},
		{
			ID:   RouteTimesheet,
			Name: "Timesheet",
			URL:  "/timesheet",
			Icon: "timesheet",
			RequiredRoles: []session.Role{
				session.RoleAttendanceEmployee,
				session.RoleAttendanceManager,
				session.RoleAttendanceAdmin,
			},
			SubTree: []RouteNode{
				{
					ID:   RouteTimesheetMy,
					Name: "My Timesheet",
					URL:  "/timesheet/my",
					RequiredRoles: []session.Role{
						session.RoleAttendanceEmployee,
						session.RoleAttendanceManager,
						session.RoleAttendanceAdmin,
					},
				},
				{
					ID:            RouteTimesheetTeam,
					Name:          "Team Timesheets",
					URL:           "/timesheet/team",
					RequiredRoles: []session.Role{session.RoleAttendanceManager, session.RoleAttendanceAdmin},
				},
				{
					ID:            RouteTimesheetApprovals,
					Name:          "Approvals",
					URL:           "/timesheet/approvals",
					RequiredRoles: []session.Role{session.RoleAttendanceManager, session.RoleAttendanceAdmin},
				},
			},
		},
		{
			ID:   RouteLeave,
			Name: "Leave",
			URL:  "/leave",
			Icon: "leave",
			RequiredRoles: []session.Role{
				session.RoleLeaveEmployee,
				session.RoleLeaveManager,
				session.RoleLeaveAdmin,
			},
			SubTree: []RouteNode{
				{
					ID:   RouteLeaveRequests,
					Name: "Leave Requests",
					URL:  "/leave/requests",
					RequiredRoles: []session.Role{
						session.RoleLeaveEmployee,
						session.RoleLeaveManager,
						session.RoleLeaveAdmin,
					},
				},
				{
					ID:            RouteLeaveBalances,
					Name:          "Leave Balances",
					URL:           "/leave/balances",
					RequiredRoles: []session.Role{session.RoleLeaveManager, session.RoleLeaveAdmin},
				},
				{
					ID:            RouteLeaveCalendar,
					Name:          "Team Calendar",
					URL:           "/leave/calendar",
					RequiredRoles: []session.Role{session.RoleLeaveManager, session.RoleLeaveAdmin},
				},
			},
		},
		{
			ID:   RouteSign,
			Name: "Sign",
			URL:  "/sign",
			Icon: "sign",
			RequiredRoles: []session.Role{
				session.RoleESignEmployee,
				session.RoleESignSender,
				session.RoleESignAdmin,
			},
			SubTree: []RouteNode{
				{
					ID:   RouteSignInbox,
					Name: "Inbox",
					URL:  "/sign/inbox",
					RequiredRoles: []session.Role{
						session.RoleESignEmployee,
						session.RoleESignSender,
						session.RoleESignAdmin,
					},
				},
				{
					ID:            RouteSignSent,
					Name:          "Sent",
					URL:           "/sign/sent",
					RequiredRoles: []session.Role{session.RoleESignSender, session.RoleESignAdmin},
				},
				{
					ID:            RouteSignTemplates,
					Name:          "Templates",
					URL:           "/sign/templates",
					RequiredRoles: []session.Role{session.RoleESignAdmin},
				},
			},
		},
		{
			ID:            RouteSettings,
			Name:          "Settings",
			URL:           "/settings",
			Icon:          "settings",
			RequiredRoles: session.AllRoles(),
			SubTree: []RouteNode{
				{
					ID:            RouteSettingsAccount,
					Name:          "Account Settings",
					URL:           "/settings/account",
					RequiredRoles: session.AllRoles(),
				},
				{
					ID:            RouteSettingsCompany,
					Name:          "Company Settings",
					URL:           "/settings/company",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
				{
					ID:            RouteSettingsBilling,
					Name:          "Billing",
					URL:           "/settings/billing",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
			},
		},
		{
			ID:            RouteConfigurations,
			Name:          "Configurations",
			URL:           "/configurations",
			Icon:          "configurations",
			RequiredRoles: []session.Role{session.RoleSuperAdmin},
			SubTree: []RouteNode{
				{
					ID:            RouteConfigPeople,
					Name:          "People",
					URL:           "/configurations/people",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
				{
					ID:            RouteConfigLeave,
					Name:          "Leave",
					URL:           "/configurations/leave",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
				{
					ID:            RouteConfigAttendance,
					Name:          "Attendance",
					URL:           "/configurations/attendance",
					RequiredRoles: []session.Role{session.RoleSuperAdmin},
				},
			},
		},
	}
}
