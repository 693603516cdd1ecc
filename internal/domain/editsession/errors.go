package editsession

import "errors"

var (
	ErrSessionNotFound   = errors.New("edit session not found")
	ErrSessionExists     = errors.New("edit session already exists")
	ErrStepNotInWizard   = errors.New("step is not part of this wizard")
	ErrSectionMismatch   = errors.New("section payload does not match the step")
	ErrNoPendingIntent   = errors.New("no pending navigation to resolve")
	ErrModalNotOpen      = errors.New("discard modal is not open")
	ErrNothingToNavigate = errors.New("navigation target missing")
)
