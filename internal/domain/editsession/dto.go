package editsession

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
)

// SessionResponse is the wire shape of an edit session.
type SessionResponse struct {
	ID          string                  `json:"id"`
	EmployeeID  string                  `json:"employee_id"`
	Steps       []FormStep              `json:"steps"`
	CurrentStep FormStep                `json:"current_step"`
	Modal       ModalState              `json:"modal"`
	Dirty       bool                    `json:"dirty"`
	Record      employee.RecordResponse `json:"record"`
}

// ToResponse maps a session to its wire shape. Dirty is recomputed here,
// never read from a cached field.
func ToResponse(s *Session) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		Steps:       s.Steps,
		CurrentStep: s.CurrentStep,
		Modal:       s.Modal,
		Dirty:       s.IsDirty(),
		Record:      employee.ToResponse(s.Working),
	}
}

// UpdateSectionRequest carries exactly one section payload; which one must
// match the step being updated.
type UpdateSectionRequest struct {
	Personal    *employee.PersonalSectionRequest    `json:"personal,omitempty"`
	Emergency   *employee.EmergencySectionRequest   `json:"emergency,omitempty"`
	Employment  *employee.EmploymentSectionRequest  `json:"employment,omitempty"`
	Permissions *employee.PermissionsSectionRequest `json:"permissions,omitempty"`
	Leave       *employee.LeaveSectionRequest       `json:"leave,omitempty"`
	Timesheet   *employee.TimesheetSectionRequest   `json:"timesheet,omitempty"`
}

// NavigationRequest is a navigation attempt routed through the guard.
type NavigationRequest struct {
	Trigger    Trigger  `json:"trigger"`
	TargetURL  string   `json:"target_url,omitempty"`
	TargetStep FormStep `json:"target_step,omitempty"`
}

// GuardDecision is the guard's synchronous allow/deny answer. When denied,
// the modal state describes why and the pending intent is already armed.
type GuardDecision struct {
	Allowed     bool       `json:"allowed"`
	Modal       ModalState `json:"modal"`
	CurrentStep FormStep   `json:"current_step"`
}

// DiscardResult is returned when the user confirms a discard: the working
// copy has been reset and Resume carries the navigation to complete.
type DiscardResult struct {
	Resume      *PendingIntent `json:"resume,omitempty"`
	CurrentStep FormStep       `json:"current_step"`
}

// SaveOptions tweaks the save protocol.
type SaveOptions struct {
	// FromLeaveTab marks a save triggered by the leave-tab discard flow;
	// it suppresses the incomplete-step redirect.
	FromLeaveTab bool `json:"from_leave_tab"`
}

// SaveResult is the outcome of one Save call.
type SaveResult struct {
	// ReinviteRequired means nothing was submitted: the work email changed
	// and the reinvite confirmation has not been given yet.
	ReinviteRequired bool                     `json:"reinvite_required"`
	Saved            bool                     `json:"saved"`
	RedirectStep     *FormStep                `json:"redirect_step,omitempty"`
	Record           *employee.RecordResponse `json:"record,omitempty"`
}
