package editsession

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/google/uuid"
)

type editSessionServiceImpl struct {
	store        editsession.Store
	employeeRepo employee.EmployeeRepository
}

// NewEditSessionService creates the dirty-tracking store and guard service.
func NewEditSessionService(
	store editsession.Store,
	employeeRepo employee.EmployeeRepository,
) editsession.Service {
	return &editSessionServiceImpl{
		store:        store,
		employeeRepo: employeeRepo,
	}
}

// Start implements editsession.Service.
func (s *editSessionServiceImpl) Start(ctx context.Context, viewer session.Session, employeeID string) (editsession.SessionResponse, error) {
	rec, err := s.employeeRepo.GetRecord(ctx, employeeID, viewer.CompanyID)
	if err != nil {
		return editsession.SessionResponse{}, err
	}

	supervised := false
	if viewer.EmployeeID != nil && *viewer.EmployeeID != employeeID {
		supervised, err = s.employeeRepo.IsSupervisedBy(ctx, employeeID, *viewer.EmployeeID)
		if err != nil {
			// Fail closed: a failed supervision lookup narrows the wizard,
			// it never widens it.
			slog.Warn("Supervision check failed, excluding optional steps",
				"employee_id", employeeID, "viewer_employee_id", *viewer.EmployeeID, "error", err)
			supervised = false
		}
	}

	steps := editsession.FixedSteps()
	if viewer.Roles.Has(session.RoleLeaveEmployee) &&
		(supervised || viewer.Roles.Has(session.RoleLeaveAdmin)) {
		steps = append(steps, editsession.StepLeave)
	} else {
		rec.Leave = nil
	}
	if viewer.Roles.Has(session.RoleAttendanceEmployee) &&
		(supervised || viewer.Roles.Has(session.RoleAttendanceAdmin)) {
		steps = append(steps, editsession.StepTimesheet)
	} else {
		rec.Timesheet = nil
	}

	now := time.Now()
	sess := &editsession.Session{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		Viewer:      viewer,
		Snapshot:    rec,
		Working:     rec.Clone(),
		Steps:       steps,
		CurrentStep: editsession.StepPersonal,
		CreatedAt:   now,
		LastTouched: now,
	}

	if err := s.store.Create(ctx, sess); err != nil {
		return editsession.SessionResponse{}, err
	}
	return editsession.ToResponse(sess), nil
}

// owned runs fn on the session only when the requesting viewer started it.
// A foreign viewer cannot tell someone else's session from a missing one.
func (s *editSessionServiceImpl) owned(ctx context.Context, viewerID, id string, fn func(sess *editsession.Session) error) error {
	return s.store.Update(ctx, id, func(sess *editsession.Session) error {
		if sess.Viewer.UserID != viewerID {
			return editsession.ErrSessionNotFound
		}
		return fn(sess)
	})
}

// Get implements editsession.Service.
func (s *editSessionServiceImpl) Get(ctx context.Context, viewerID, id string) (editsession.SessionResponse, error) {
	var resp editsession.SessionResponse
	err := s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		resp = editsession.ToResponse(sess)
		return nil
	})
	return resp, err
}

// UpdateSection implements editsession.Service. The payload must carry the
// section matching the step, and the step must be part of this wizard.
func (s *editSessionServiceImpl) UpdateSection(ctx context.Context, viewerID, id string, step editsession.FormStep, req editsession.UpdateSectionRequest) (editsession.SessionResponse, error) {
	var resp editsession.SessionResponse
	err := s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		if !sess.HasStep(step) {
			return editsession.ErrStepNotInWizard
		}
		if err := applySection(sess, step, req); err != nil {
			return err
		}
		resp = editsession.ToResponse(sess)
		return nil
	})
	return resp, err
}

func applySection(sess *editsession.Session, step editsession.FormStep, req editsession.UpdateSectionRequest) error {
	switch step {
	case editsession.StepPersonal:
		if req.Personal == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Personal.Validate(); err != nil {
			return err
		}
		req.Personal.ApplyTo(&sess.Working.Personal)
	case editsession.StepEmergency:
		if req.Emergency == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Emergency.Validate(); err != nil {
			return err
		}
		req.Emergency.ApplyTo(&sess.Working.Emergency)
	case editsession.StepEmployment:
		if req.Employment == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Employment.Validate(); err != nil {
			return err
		}
		req.Employment.ApplyTo(&sess.Working.Employment)
	case editsession.StepPermissions:
		if req.Permissions == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Permissions.Validate(); err != nil {
			return err
		}
		req.Permissions.ApplyTo(&sess.Working.Permissions)
	case editsession.StepLeave:
		if req.Leave == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Leave.Validate(); err != nil {
			return err
		}
		if sess.Working.Leave == nil {
			sess.Working.Leave = &employee.LeaveSection{}
		}
		req.Leave.ApplyTo(sess.Working.Leave)
	case editsession.StepTimesheet:
		if req.Timesheet == nil {
			return editsession.ErrSectionMismatch
		}
		if err := req.Timesheet.Validate(); err != nil {
			return err
		}
		if sess.Working.Timesheet == nil {
			sess.Working.Timesheet = &employee.TimesheetSection{}
		}
		req.Timesheet.ApplyTo(sess.Working.Timesheet)
	default:
		return editsession.ErrStepNotInWizard
	}
	return nil
}

// IsValuesChanged implements editsession.Service.
func (s *editSessionServiceImpl) IsValuesChanged(ctx context.Context, viewerID, id string) (bool, error) {
	var dirty bool
	err := s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		dirty = sess.IsDirty()
		return nil
	})
	return dirty, err
}

// RequestNavigation implements editsession.Service. The diff is recomputed
// here, at the decision point. On a block the pending intent is armed
// before the denial is returned, so the resume path always exists by the
// time the caller sees the modal.
func (s *editSessionServiceImpl) RequestNavigation(ctx context.Context, viewerID, id string, req editsession.NavigationRequest) (editsession.GuardDecision, error) {
	var decision editsession.GuardDecision
	err := s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		if req.Trigger == editsession.TriggerStepSwitch && !sess.HasStep(req.TargetStep) {
			return editsession.ErrStepNotInWizard
		}

		if !sess.IsDirty() {
			if req.Trigger == editsession.TriggerStepSwitch {
				sess.CurrentStep = req.TargetStep
			}
			sess.Modal = editsession.ModalState{}
			sess.Pending = nil
			decision = editsession.GuardDecision{
				Allowed:     true,
				CurrentStep: sess.CurrentStep,
			}
			return nil
		}

		kind := editsession.IntentNavigate
		if req.Trigger == editsession.TriggerStepSwitch {
			kind = editsession.IntentStepSwitch
		}
		sess.Pending = &editsession.PendingIntent{
			Kind:       kind,
			TargetURL:  req.TargetURL,
			TargetStep: req.TargetStep,
		}
		sess.Modal = editsession.ModalState{
			Open:       true,
			Type:       editsession.ModalFor(req.Trigger),
			OpenedFrom: sess.CurrentStep,
		}
		decision = editsession.GuardDecision{
			Allowed:     false,
			Modal:       sess.Modal,
			CurrentStep: sess.CurrentStep,
		}
		return nil
	})
	return decision, err
}

// ConfirmDiscard implements editsession.Service.
func (s *editSessionServiceImpl) ConfirmDiscard(ctx context.Context, viewerID, id string) (editsession.DiscardResult, error) {
	var result editsession.DiscardResult
	err := s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		if !sess.Modal.Open {
			return editsession.ErrModalNotOpen
		}

		sess.Working = sess.Snapshot.Clone()
		resume := sess.Pending
		sess.Pending = nil
		sess.Modal = editsession.ModalState{}

		if resume != nil && resume.Kind == editsession.IntentStepSwitch {
			sess.CurrentStep = resume.TargetStep
		}
		result = editsession.DiscardResult{
			Resume:      resume,
			CurrentStep: sess.CurrentStep,
		}
		return nil
	})
	return result, err
}

// CancelDiscard implements editsession.Service. The working copy keeps its
// edits; only the modal and the queued navigation are dropped.
func (s *editSessionServiceImpl) CancelDiscard(ctx context.Context, viewerID, id string) error {
	return s.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		if !sess.Modal.Open {
			return editsession.ErrModalNotOpen
		}
		sess.Modal = editsession.ModalState{}
		sess.Pending = nil
		return nil
	})
}

// Close implements editsession.Service. Dropping the session discards the
// working copy, the modal state and the super-admin flow flag together.
func (s *editSessionServiceImpl) Close(ctx context.Context, viewerID, id string) error {
	if err := s.owned(ctx, viewerID, id, func(*editsession.Session) error { return nil }); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
