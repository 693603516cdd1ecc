package navigation

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// RouteID is the stable identity of a registry entry. Narrowing rules
// dispatch on this tag, never on the display name.
type RouteID string

const (
	RouteDashboard      RouteID = "dashboard"
	RoutePeople         RouteID = "people"
	RouteTimesheet      RouteID = "timesheet"
	RouteLeave          RouteID = "leave"
	RouteSign           RouteID = "sign"
	RouteSettings       RouteID = "settings"
	RouteConfigurations RouteID = "configurations"

	RouteDashboardPeople     RouteID = "dashboard.people"
	RouteDashboardLeave      RouteID = "dashboard.leave"
	RouteDashboardAttendance RouteID = "dashboard.attendance"

	RoutePeopleDirectory  RouteID = "people.directory"
	RoutePeopleBulkImport RouteID = "people.bulk_import"
	RoutePeopleApprovals  RouteID = "people.approvals"

	RouteTimesheetMy        RouteID = "timesheet.my"
	RouteTimesheetTeam      RouteID = "timesheet.team"
	RouteTimesheetApprovals RouteID = "timesheet.approvals"

	RouteLeaveRequests RouteID = "leave.requests"
	RouteLeaveBalances RouteID = "leave.balances"
	RouteLeaveCalendar RouteID = "leave.calendar"

	RouteSignInbox     RouteID = "sign.inbox"
	RouteSignSent      RouteID = "sign.sent"
	RouteSignTemplates RouteID = "sign.templates"

	RouteSettingsAccount RouteID = "settings.account"
	RouteSettingsCompany RouteID = "settings.company"
	RouteSettingsBilling RouteID = "settings.billing"

	RouteConfigPeople     RouteID = "configurations.people"
	RouteConfigLeave      RouteID = "configurations.leave"
	RouteConfigAttendance RouteID = "configurations.attendance"
)

// RouteNode is a static navigation-tree entry. A node with a non-empty
// SubTree is only navigable as a group; identity is the ID.
type RouteNode struct {
	ID            RouteID
	Name          string
	URL           string
	Icon          string
	RequiredRoles []session.Role
	SubTree       []RouteNode
}

// ResolvedRoute is the output of filtering a RouteNode against a role set.
// It is computed fresh on every resolution and never persisted.
type ResolvedRoute struct {
	ID         RouteID         `json:"id"`
	Name       string          `json:"name"`
	URL        string          `json:"url"`
	Icon       string          `json:"icon,omitempty"`
	HasSubTree bool            `json:"has_sub_tree"`
	SubTree    []ResolvedRoute `json:"sub_tree,omitempty"`
}
