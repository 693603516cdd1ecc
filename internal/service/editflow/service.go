package editflow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/portal-backend-go/internal/service/file"
)

// TxRunner runs fn atomically. Production wires postgresql.WithTransaction
// over the connection pool; tests run fn directly.
type TxRunner func(ctx context.Context, fn func(ctx context.Context) error) error

type editFlowControllerImpl struct {
	store        editsession.Store
	sessions     editsession.Service
	employeeRepo employee.EmployeeRepository
	files        file.FileService
	notifier     notification.Service
	runTx        TxRunner
}

// NewEditFlowController creates the multi-step edit flow controller. A nil
// tx runner degrades to running the save non-transactionally.
func NewEditFlowController(
	store editsession.Store,
	sessions editsession.Service,
	employeeRepo employee.EmployeeRepository,
	files file.FileService,
	notifier notification.Service,
	runTx TxRunner,
) editsession.Controller {
	if runTx == nil {
		runTx = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}
	}
	return &editFlowControllerImpl{
		store:        store,
		sessions:     sessions,
		employeeRepo: employeeRepo,
		files:        files,
		notifier:     notifier,
		runTx:        runTx,
	}
}

// owned runs fn on the session only when the requesting viewer started it,
// matching the ownership rule of the session service.
func (c *editFlowControllerImpl) owned(ctx context.Context, viewerID, id string, fn func(sess *editsession.Session) error) error {
	return c.store.Update(ctx, id, func(sess *editsession.Session) error {
		if sess.Viewer.UserID != viewerID {
			return editsession.ErrSessionNotFound
		}
		return fn(sess)
	})
}

// GoNext implements editsession.Controller. Step movement goes through the
// guard, so a dirty working copy blocks with the leave-tab modal.
func (c *editFlowControllerImpl) GoNext(ctx context.Context, viewerID, id string) (editsession.GuardDecision, error) {
	target, err := c.adjacentStep(ctx, viewerID, id, +1)
	if err != nil {
		return editsession.GuardDecision{}, err
	}
	return c.sessions.RequestNavigation(ctx, viewerID, id, editsession.NavigationRequest{
		Trigger:    editsession.TriggerStepSwitch,
		TargetStep: target,
	})
}

// GoBack implements editsession.Controller.
func (c *editFlowControllerImpl) GoBack(ctx context.Context, viewerID, id string) (editsession.GuardDecision, error) {
	target, err := c.adjacentStep(ctx, viewerID, id, -1)
	if err != nil {
		return editsession.GuardDecision{}, err
	}
	return c.sessions.RequestNavigation(ctx, viewerID, id, editsession.NavigationRequest{
		Trigger:    editsession.TriggerStepSwitch,
		TargetStep: target,
	})
}

// GoToStep implements editsession.Controller.
func (c *editFlowControllerImpl) GoToStep(ctx context.Context, viewerID, id string, step editsession.FormStep) (editsession.GuardDecision, error) {
	return c.sessions.RequestNavigation(ctx, viewerID, id, editsession.NavigationRequest{
		Trigger:    editsession.TriggerStepSwitch,
		TargetStep: step,
	})
}

func (c *editFlowControllerImpl) adjacentStep(ctx context.Context, viewerID, id string, offset int) (editsession.FormStep, error) {
	var target editsession.FormStep
	err := c.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		idx := sess.StepIndex(sess.CurrentStep)
		next := idx + offset
		if idx < 0 || next < 0 || next >= len(sess.Steps) {
			return editsession.ErrNothingToNavigate
		}
		target = sess.Steps[next]
		return nil
	})
	return target, err
}

// StageAvatar implements editsession.Controller. The picture is held on the
// working copy only; it reaches storage during Save.
func (c *editFlowControllerImpl) StageAvatar(ctx context.Context, viewerID, id string, filename string, content []byte) (editsession.SessionResponse, error) {
	var resp editsession.SessionResponse
	err := c.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		sess.Working.Personal.StagedAvatar = &employee.StagedFile{
			Filename: filename,
			Content:  append([]byte(nil), content...),
		}
		resp = editsession.ToResponse(sess)
		return nil
	})
	return resp, err
}

// ConfirmReinvite implements editsession.Controller.
func (c *editFlowControllerImpl) ConfirmReinvite(ctx context.Context, viewerID, id string) error {
	return c.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		sess.ReinviteConfirmed = true
		return nil
	})
}

// Save implements editsession.Controller. The protocol, in order: the
// reinvite gate on a changed work email, the staged picture upload, one
// multi-section update, a refetch, then the completeness redirect for
// elevated viewers. Any failure before the update leaves the record
// untouched.
func (c *editFlowControllerImpl) Save(ctx context.Context, viewerID, id string, opts editsession.SaveOptions) (editsession.SaveResult, error) {
	var result editsession.SaveResult
	err := c.owned(ctx, viewerID, id, func(sess *editsession.Session) error {
		workEmailChanged := sess.Working.Employment.WorkEmail != sess.Snapshot.Employment.WorkEmail
		if workEmailChanged && !sess.ReinviteConfirmed {
			// Nothing is submitted until the reinvite is confirmed.
			result = editsession.SaveResult{ReinviteRequired: true}
			return nil
		}

		if staged := sess.Working.Personal.StagedAvatar; staged != nil {
			ref, err := c.files.UploadAvatar(ctx, sess.EmployeeID, bytes.NewReader(staged.Content), staged.Filename)
			if err != nil {
				c.notifier.Push(ctx, sess.Viewer.UserID, notification.NewErrorToast(
					"Failed to upload profile picture",
					"Your changes were not saved. Please try again.",
				))
				return fmt.Errorf("%w: %v", employee.ErrAvatarUploadFailed, err)
			}
			if prev := sess.Snapshot.Personal.AvatarURL; prev != nil && *prev != "" {
				if delErr := c.files.DeleteFile(ctx, *prev); delErr != nil {
					slog.Warn("Failed to delete previous profile picture", "ref", *prev, "error", delErr)
				}
			}
			sess.Working.Personal.AvatarURL = &ref
			sess.Working.Personal.StagedAvatar = nil
		}

		var fresh employee.Record
		err := c.runTx(ctx, func(txCtx context.Context) error {
			if err := c.employeeRepo.UpdateRecord(txCtx, sess.Working); err != nil {
				return err
			}
			var err error
			fresh, err = c.employeeRepo.GetRecord(txCtx, sess.EmployeeID, sess.Working.CompanyID)
			return err
		})
		if err != nil {
			c.notifier.Push(ctx, sess.Viewer.UserID, saveErrorToast(err, sess.Working.DisplayName()))
			return err
		}

		if !sess.HasStep(editsession.StepLeave) {
			fresh.Leave = nil
		}
		if !sess.HasStep(editsession.StepTimesheet) {
			fresh.Timesheet = nil
		}

		sess.Snapshot = fresh
		sess.Working = fresh.Clone()
		sess.ReinviteConfirmed = false

		result = editsession.SaveResult{Saved: true}
		recResp := employee.ToResponse(fresh)
		result.Record = &recResp

		if sess.Viewer.IsElevated() && !opts.FromLeaveTab {
			if step := editsession.IncompleteStep(fresh, sess.SuperAdminFlow); step != nil {
				// The widened field set applies only from the next check on.
				sess.SuperAdminFlow = true
				sess.CurrentStep = *step
				result.RedirectStep = step
				c.notifier.Push(ctx, sess.Viewer.UserID, notification.NewWarningToast(
					"Some required information is missing",
					"Please complete the highlighted section.",
				))
				return nil
			}
		}

		c.notifier.Push(ctx, sess.Viewer.UserID, notification.NewSuccessToast(
			"Changes saved", "",
		))
		return nil
	})
	if err != nil {
		return editsession.SaveResult{}, err
	}
	return result, nil
}

// saveErrorToast maps an update failure to the toast the UI shows for it.
// Unmapped errors fall back to a generic message naming the employee.
func saveErrorToast(err error, displayName string) notification.Toast {
	switch {
	case errors.Is(err, employee.ErrSupervisorConflictIndividual):
		return notification.NewErrorToast(
			"Failed to save changes",
			"The selected supervisor already manages another employee directly.",
		)
	case errors.Is(err, employee.ErrSupervisorConflictTeam):
		return notification.NewErrorToast(
			"Failed to save changes",
			"The selected supervisor already supervises another team.",
		)
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		return notification.NewErrorToast(
			"Failed to save changes",
			"The employee ID is already in use.",
		)
	case errors.Is(err, employee.ErrWorkEmailExists):
		return notification.NewErrorToast(
			"Failed to save changes",
			"The work email is already in use.",
		)
	}
	return notification.NewErrorToast(
		"Failed to save changes",
		fmt.Sprintf("Could not save changes for %s. Please try again.", displayName),
	)
}
