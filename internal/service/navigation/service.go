package navigation

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/navigation"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

type navigationServiceImpl struct {
	registry []navigation.RouteNode
}

// NewNavigationService builds the resolver over a registry tree. Pass
// navigation.Registry() in production; tests may pass a smaller tree.
func NewNavigationService(registry []navigation.RouteNode) navigation.Service {
	return &navigationServiceImpl{registry: registry}
}

// Resolve implements navigation.Service. The walk preserves registry order
// and never fails: every narrowing decision degrades to "hidden" when role
// data is missing.
//
// Narrowed modules dispatch on the route ID and return early; the generic
// role filter does not re-run for them. Keep that precedence: it is part of
// the visibility contract.
func (s *navigationServiceImpl) Resolve(in navigation.ResolveInput) []navigation.ResolvedRoute {
	roles := in.Roles
	if roles == nil {
		roles = session.RoleSet{}
	}

	resolved := make([]navigation.ResolvedRoute, 0, len(s.registry))
	for _, node := range s.registry {
		var r *navigation.ResolvedRoute
		switch node.ID {
		case navigation.RouteDashboard:
			r = resolveDashboard(node, roles)
		case navigation.RoutePeople:
			r = resolvePeople(node, roles)
		case navigation.RouteTimesheet:
			r = resolveTimesheet(node, roles)
		case navigation.RouteLeave:
			r = resolveLeave(node, roles)
		case navigation.RouteSign:
			r = resolveSign(node, roles, in.ESignEnabled)
		case navigation.RouteSettings:
			r = resolveSettings(node, roles, in.LoginMethod, in.Enterprise)
		case navigation.RouteConfigurations:
			r = resolveConfigurations(node, roles)
		default:
			r = resolveGeneric(node, roles)
		}
		if r != nil {
			resolved = append(resolved, *r)
		}
	}
	return resolved
}

// resolveDashboard hides the dashboard unless the session can see at least
// one module dashboard; a plain leave employee gets a direct link instead of
// the group.
func resolveDashboard(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if !roles.HasAny(session.RoleLeaveEmployee, session.RolePeopleManager, session.RoleAttendanceManager) {
		return nil
	}

	if roles.Has(session.RoleLeaveEmployee) &&
		!roles.HasAny(session.RoleLeaveManager, session.RoleLeaveAdmin) {
		if roles.HasAny(session.RolePeopleManager, session.RoleAttendanceManager, session.RoleLeaveEmployee) {
			return directFrom(node)
		}
		return nil
	}

	return withFilteredSubTree(node, roles)
}

// resolvePeople narrows a plain people employee to the directory link.
func resolvePeople(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if roles.Has(session.RolePeopleEmployee) &&
		!roles.HasAny(session.RolePeopleAdmin, session.RolePeopleManager) {
		return narrowTo(node, navigation.RoutePeopleDirectory, "")
	}
	return resolveGeneric(node, roles)
}

// resolveTimesheet hides the module without any attendance role and narrows
// non-managers to "My Timesheet". Admins and managers see the full subtree
// even without the employee tag.
func resolveTimesheet(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if !roles.HasAny(session.RoleAttendanceEmployee, session.RoleAttendanceManager, session.RoleAttendanceAdmin) {
		return nil
	}
	if !roles.HasAny(session.RoleAttendanceAdmin, session.RoleAttendanceManager) {
		return narrowTo(node, navigation.RouteTimesheetMy, "")
	}
	return withFilteredSubTree(node, roles)
}

// resolveLeave hides the module without the leave employee tag, including
// for leave managers and admins. With the tag, managers and admins of the
// leave module see the full subtree; a leave employee who manages or
// administers another module gets a renamed direct link; everyone else gets
// nothing.
func resolveLeave(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if !roles.Has(session.RoleLeaveEmployee) {
		return nil
	}

	if roles.HasAny(session.RoleLeaveManager, session.RoleLeaveAdmin) {
		return withFilteredSubTree(node, roles)
	}

	if roles.HasAny(
		session.RolePeopleManager, session.RoleAttendanceManager,
		session.RolePeopleAdmin, session.RoleAttendanceAdmin,
	) {
		return narrowTo(node, navigation.RouteLeaveRequests, "My Requests")
	}

	return nil
}

// resolveSign hides the module behind the feature flag; only senders and
// admins see the full subtree, other e-sign users get the inbox link.
func resolveSign(node navigation.RouteNode, roles session.RoleSet, enabled bool) *navigation.ResolvedRoute {
	if !enabled {
		return nil
	}
	if roles.HasAny(session.RoleESignSender, session.RoleESignAdmin) {
		return withFilteredSubTree(node, roles)
	}
	if roles.Has(session.RoleESignEmployee) {
		return narrowTo(node, navigation.RouteSignInbox, "")
	}
	return nil
}

// resolveSettings hides settings entirely for employee-tier-only sessions
// established through the federated provider; everyone else gets the
// account link, and the super admin gets the full subtree.
func resolveSettings(node navigation.RouteNode, roles session.RoleSet, loginMethod session.LoginMethod, enterprise bool) *navigation.ResolvedRoute {
	if len(roles) == 0 {
		return nil
	}
	if roles.IsEmployeeTierOnly() && loginMethod == session.LoginMethodGoogle {
		return nil
	}
	if !roles.Has(session.RoleSuperAdmin) {
		return narrowTo(node, navigation.RouteSettingsAccount, "")
	}

	r := withFilteredSubTree(node, roles)
	if r == nil || enterprise {
		return r
	}
	// Billing is an enterprise surface.
	kept := r.SubTree[:0]
	for _, sub := range r.SubTree {
		if sub.ID != navigation.RouteSettingsBilling {
			kept = append(kept, sub)
		}
	}
	r.SubTree = kept
	r.HasSubTree = len(kept) > 0
	if !r.HasSubTree {
		return nil
	}
	return r
}

// resolveConfigurations is super-admin-only; the attendance entry is
// additionally dropped without the attendance employee tag.
func resolveConfigurations(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if !roles.Has(session.RoleSuperAdmin) {
		return nil
	}

	r := withFilteredSubTree(node, roles)
	if r == nil {
		return nil
	}
	if !roles.Has(session.RoleAttendanceEmployee) {
		kept := r.SubTree[:0]
		for _, sub := range r.SubTree {
			if sub.ID != navigation.RouteConfigAttendance {
				kept = append(kept, sub)
			}
		}
		r.SubTree = kept
		r.HasSubTree = len(kept) > 0
		if !r.HasSubTree {
			return nil
		}
	}
	return r
}

// resolveGeneric is the fallback rule: filter the subtree by each entry's
// own required roles and keep the parent only while something survives; a
// leaf is kept iff the session holds one of its required roles.
func resolveGeneric(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	if len(node.SubTree) > 0 {
		return withFilteredSubTree(node, roles)
	}
	if roles.HasAny(node.RequiredRoles...) {
		return directFrom(node)
	}
	return nil
}

// withFilteredSubTree keeps the parent with the role-filtered subtree, or
// drops it when no child survives: an empty expandable group never renders.
func withFilteredSubTree(node navigation.RouteNode, roles session.RoleSet) *navigation.ResolvedRoute {
	children := make([]navigation.ResolvedRoute, 0, len(node.SubTree))
	for _, sub := range node.SubTree {
		if roles.HasAny(sub.RequiredRoles...) {
			children = append(children, *directFrom(sub))
		}
	}
	if len(children) == 0 {
		return nil
	}
	return &navigation.ResolvedRoute{
		ID:         node.ID,
		Name:       node.Name,
		URL:        node.URL,
		Icon:       node.Icon,
		HasSubTree: true,
		SubTree:    children,
	}
}

// narrowTo collapses a group to one of its children as a direct link,
// optionally renaming it. Falls back to the parent as a plain link if the
// child id is not in the registry.
func narrowTo(node navigation.RouteNode, childID navigation.RouteID, rename string) *navigation.ResolvedRoute {
	for _, sub := range node.SubTree {
		if sub.ID == childID {
			r := directFrom(sub)
			r.Icon = node.Icon
			if rename != "" {
				r.Name = rename
			}
			return r
		}
	}
	return directFrom(node)
}

// directFrom flattens a node into a link with no subtree.
func directFrom(node navigation.RouteNode) *navigation.ResolvedRoute {
	return &navigation.ResolvedRoute{
		ID:         node.ID,
		Name:       node.Name,
		URL:        node.URL,
		Icon:       node.Icon,
		HasSubTree: false,
	}
}
