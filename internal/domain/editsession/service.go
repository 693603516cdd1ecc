package editsession

import (
	"context"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// Service is the dirty-tracking store plus the discard/leave guard. The
// guard is an explicit allow/deny decision: no exceptions, no thrown
// control flow.
//
// A session belongs to the viewer who started it. Every session-scoped
// operation takes the requesting viewer's user ID and answers with
// ErrSessionNotFound for anyone else's session.
type Service interface {
	// Start fetches the employee record and opens a session with the
	// snapshot, a cloned working copy, and the computed step set.
	Start(ctx context.Context, viewer session.Session, employeeID string) (SessionResponse, error)

	// Get returns the current session state.
	Get(ctx context.Context, viewerID, id string) (SessionResponse, error)

	// UpdateSection applies a section payload to the working copy.
	UpdateSection(ctx context.Context, viewerID, id string, step FormStep, req UpdateSectionRequest) (SessionResponse, error)

	// IsValuesChanged recomputes the structural diff.
	IsValuesChanged(ctx context.Context, viewerID, id string) (bool, error)

	// RequestNavigation runs the guard for a navigation attempt. A dirty
	// session blocks and arms the pending intent before denying.
	RequestNavigation(ctx context.Context, viewerID, id string, req NavigationRequest) (GuardDecision, error)

	// ConfirmDiscard resets the working copy to the snapshot, clears the
	// modal and returns the armed intent so the caller can resume it.
	ConfirmDiscard(ctx context.Context, viewerID, id string) (DiscardResult, error)

	// CancelDiscard closes the modal and drops the pending intent.
	CancelDiscard(ctx context.Context, viewerID, id string) error

	// Close discards the session unconditionally (screen unmount).
	Close(ctx context.Context, viewerID, id string) error
}

// Controller is the multi-step edit flow: step movement and the save
// protocol shared by every step's next/save action. Session ownership is
// enforced the same way as on Service.
type Controller interface {
	GoNext(ctx context.Context, viewerID, id string) (GuardDecision, error)
	GoBack(ctx context.Context, viewerID, id string) (GuardDecision, error)
	GoToStep(ctx context.Context, viewerID, id string, step FormStep) (GuardDecision, error)

	// StageAvatar stages a profile picture on the working copy; it is
	// uploaded during Save, not before.
	StageAvatar(ctx context.Context, viewerID, id string, filename string, content []byte) (SessionResponse, error)

	// ConfirmReinvite arms the two-phase work-email gate for the next Save.
	ConfirmReinvite(ctx context.Context, viewerID, id string) error

	// Save runs the save protocol: reinvite gate, staged picture upload,
	// single multi-section update, refetch, completeness redirect.
	Save(ctx context.Context, viewerID, id string, opts SaveOptions) (SaveResult, error)
}
