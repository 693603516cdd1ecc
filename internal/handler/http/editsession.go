package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxAvatarSize caps staged profile pictures at 5 MB.
const maxAvatarSize = 5 << 20

type EditSessionHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateSection(w http.ResponseWriter, r *http.Request)
	Dirty(w http.ResponseWriter, r *http.Request)
	RequestNavigation(w http.ResponseWriter, r *http.Request)
	ConfirmDiscard(w http.ResponseWriter, r *http.Request)
	CancelDiscard(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)

	GoNext(w http.ResponseWriter, r *http.Request)
	GoBack(w http.ResponseWriter, r *http.Request)
	GoToStep(w http.ResponseWriter, r *http.Request)
	StageAvatar(w http.ResponseWriter, r *http.Request)
	ConfirmReinvite(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
}

type editSessionHandlerImpl struct {
	sessions   editsession.Service
	controller editsession.Controller
}

func NewEditSessionHandler(sessions editsession.Service, controller editsession.Controller) EditSessionHandler {
	return &editSessionHandlerImpl{
		sessions:   sessions,
		controller: controller,
	}
}

// viewerAndSession resolves the authenticated viewer's user ID and the
// session ID from the request. The service layer matches them: a session
// started by someone else reads as not found.
func viewerAndSession(w http.ResponseWriter, r *http.Request) (viewerID, sessionID string, ok bool) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return "", "", false
	}
	return sess.UserID, chi.URLParam(r, "sessionID"), true
}

// Start opens an edit session for an employee record.
func (h *editSessionHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	resp, err := h.sessions.Start(r.Context(), sess, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Edit session started", resp)
}

// Get implements EditSessionHandler.
func (h *editSessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	resp, err := h.sessions.Get(r.Context(), viewerID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateSection writes a section payload into the working copy.
func (h *editSessionHandlerImpl) UpdateSection(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	step := editsession.FormStep(chi.URLParam(r, "step"))
	if !step.IsValid() {
		response.BadRequest(w, "Unknown step", nil)
		return
	}

	var req editsession.UpdateSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.sessions.UpdateSection(r.Context(), viewerID, sessionID, step, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Dirty reports whether the working copy differs from the snapshot.
func (h *editSessionHandlerImpl) Dirty(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	dirty, err := h.sessions.IsValuesChanged(r.Context(), viewerID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]bool{"dirty": dirty})
}

// RequestNavigation runs the guard for a navigation attempt.
func (h *editSessionHandlerImpl) RequestNavigation(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	var req editsession.NavigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if !req.Trigger.IsValid() {
		response.BadRequest(w, "Unknown navigation trigger", nil)
		return
	}

	decision, err := h.sessions.RequestNavigation(r.Context(), viewerID, sessionID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, decision)
}

// ConfirmDiscard implements EditSessionHandler.
func (h *editSessionHandlerImpl) ConfirmDiscard(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	result, err := h.sessions.ConfirmDiscard(r.Context(), viewerID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CancelDiscard implements EditSessionHandler.
func (h *editSessionHandlerImpl) CancelDiscard(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	if err := h.sessions.CancelDiscard(r.Context(), viewerID, sessionID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Discard cancelled", nil)
}

// Close implements EditSessionHandler.
func (h *editSessionHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Close(r.Context(), viewerID, sessionID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Edit session closed", nil)
}

// GoNext implements EditSessionHandler.
func (h *editSessionHandlerImpl) GoNext(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	decision, err := h.controller.GoNext(r.Context(), viewerID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, decision)
}

// GoBack implements EditSessionHandler.
func (h *editSessionHandlerImpl) GoBack(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	decision, err := h.controller.GoBack(r.Context(), viewerID, sessionID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, decision)
}

// GoToStep implements EditSessionHandler.
func (h *editSessionHandlerImpl) GoToStep(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	step := editsession.FormStep(chi.URLParam(r, "step"))
	if !step.IsValid() {
		response.BadRequest(w, "Unknown step", nil)
		return
	}

	decision, err := h.controller.GoToStep(r.Context(), viewerID, sessionID, step)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, decision)
}

// StageAvatar stages a profile picture on the working copy. The upload to
// storage happens during Save.
func (h *editSessionHandlerImpl) StageAvatar(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "Missing avatar file", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxAvatarSize))
	if err != nil {
		response.BadRequest(w, "Failed to read avatar file", nil)
		return
	}

	resp, err := h.controller.StageAvatar(r.Context(), viewerID, sessionID, header.Filename, content)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ConfirmReinvite implements EditSessionHandler.
func (h *editSessionHandlerImpl) ConfirmReinvite(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	if err := h.controller.ConfirmReinvite(r.Context(), viewerID, sessionID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Reinvite confirmed", nil)
}

type saveRequest struct {
	FromLeaveTab bool `json:"from_leave_tab"`
}

// Save runs the save protocol.
func (h *editSessionHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	viewerID, sessionID, ok := viewerAndSession(w, r)
	if !ok {
		return
	}

	var req saveRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body", nil)
			return
		}
	}

	result, err := h.controller.Save(r.Context(), viewerID, sessionID, editsession.SaveOptions{
		FromLeaveTab: req.FromLeaveTab,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
