package editsession

import (
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// FormStep is one section of the multi-step edit wizard, in wizard order.
type FormStep string

const (
	StepPersonal    FormStep = "personal"
	StepEmergency   FormStep = "emergency"
	StepEmployment  FormStep = "employment"
	StepPermissions FormStep = "permissions"
	StepLeave       FormStep = "leave"
	StepTimesheet   FormStep = "timesheet"
)

// FixedSteps are always part of the wizard; StepLeave and StepTimesheet are
// appended depending on the viewer's roles and the supervision check.
func FixedSteps() []FormStep {
	return []FormStep{StepPersonal, StepEmergency, StepEmployment, StepPermissions}
}

func (s FormStep) IsValid() bool {
	switch s {
	case StepPersonal, StepEmergency, StepEmployment, StepPermissions, StepLeave, StepTimesheet:
		return true
	}
	return false
}

// ModalType identifies why a navigation attempt was blocked.
type ModalType string

const (
	ModalLeaveForm   ModalType = "LEAVE_FORM"
	ModalCancelForm  ModalType = "CANCEL_FORM"
	ModalLeaveTab    ModalType = "LEAVE_TAB"
	ModalDiscardForm ModalType = "DISCARD_FORM"
)

// Trigger is the navigation attempt that ran into the guard.
type Trigger string

const (
	TriggerBack        Trigger = "back"
	TriggerCancel      Trigger = "cancel"
	TriggerStepSwitch  Trigger = "step_switch"
	TriggerRouteChange Trigger = "route_change"
	// TriggerDiscard is the explicit discard action inside the form.
	TriggerDiscard Trigger = "discard"
)

func (t Trigger) IsValid() bool {
	switch t {
	case TriggerBack, TriggerCancel, TriggerStepSwitch, TriggerRouteChange, TriggerDiscard:
		return true
	}
	return false
}

// ModalFor maps a trigger to the modal type shown for it.
func ModalFor(t Trigger) ModalType {
	switch t {
	case TriggerCancel:
		return ModalCancelForm
	case TriggerStepSwitch:
		return ModalLeaveTab
	case TriggerBack, TriggerRouteChange:
		return ModalLeaveForm
	}
	return ModalDiscardForm
}

// ModalState is the discard-confirmation modal. Created when a blocked
// navigation attempt occurs, cleared when the user resolves it.
type ModalState struct {
	Open       bool      `json:"open"`
	Type       ModalType `json:"type,omitempty"`
	OpenedFrom FormStep  `json:"opened_from,omitempty"`
}

// IntentKind distinguishes resuming an in-app navigation from a step switch.
type IntentKind string

const (
	IntentNavigate   IntentKind = "navigate"
	IntentStepSwitch IntentKind = "step_switch"
)

// PendingIntent is the navigation re-queued while the modal is open. It must
// be armed before the guard reports the block, so the resume path always
// exists by the time the caller sees the denial.
type PendingIntent struct {
	Kind       IntentKind `json:"kind"`
	TargetURL  string     `json:"target_url,omitempty"`
	TargetStep FormStep   `json:"target_step,omitempty"`
}

// Session is one edit screen's state: the saved snapshot, the working copy,
// and the guard/controller bookkeeping. A session is owned exclusively by a
// single edit screen instance.
type Session struct {
	ID         string
	EmployeeID string
	Viewer     session.Session

	Snapshot employee.Record
	Working  employee.Record

	Steps       []FormStep
	CurrentStep FormStep

	Modal   ModalState
	Pending *PendingIntent

	// ReinviteConfirmed arms the two-phase work-email gate for the next save.
	ReinviteConfirmed bool
	// SuperAdminFlow widens the required-field set of the completeness
	// check. It starts false, flips true only once an elevated viewer's
	// post-save check finds a missing field, and dies with the session.
	SuperAdminFlow bool

	CreatedAt   time.Time
	LastTouched time.Time
}

// IsDirty recomputes the structural diff between the working copy and the
// snapshot. It is never cached: callers invoke it immediately before every
// navigation-blocking decision.
func (s *Session) IsDirty() bool {
	return !s.Working.Equal(s.Snapshot)
}

// HasStep reports whether the wizard currently includes the step.
func (s *Session) HasStep(step FormStep) bool {
	for _, st := range s.Steps {
		if st == step {
			return true
		}
	}
	return false
}

// StepIndex returns the position of the step, or -1.
func (s *Session) StepIndex(step FormStep) int {
	for i, st := range s.Steps {
		if st == step {
			return i
		}
	}
	return -1
}
