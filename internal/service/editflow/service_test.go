package editflow

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/editsession"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/notification"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/repository/memory"
	serviceEditsession "github.com/cmlabs-hris/portal-backend-go/internal/service/editsession"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	record    employee.Record
	updateErr error
	updated   []employee.Record
}

func (f *fakeEmployeeRepo) GetRecord(ctx context.Context, id string, companyID string) (employee.Record, error) {
	return f.record.Clone(), nil
}

func (f *fakeEmployeeRepo) UpdateRecord(ctx context.Context, rec employee.Record) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, rec.Clone())
	f.record = rec.Clone()
	return nil
}

func (f *fakeEmployeeRepo) IsSupervisedBy(ctx context.Context, employeeID string, viewerEmployeeID string) (bool, error) {
	return false, nil
}

type fakeFileService struct {
	uploadRef string
	uploadErr error
	uploads   []string
	deleted   []string
}

func (f *fakeFileService) UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, filename)
	return f.uploadRef, nil
}

func (f *fakeFileService) DeleteFile(ctx context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

func (f *fakeFileService) GetFileURL(ctx context.Context, ref string, expiry time.Duration) (string, error) {
	return ref, nil
}

type fakeNotifier struct {
	toasts []notification.Toast
}

func (f *fakeNotifier) Push(ctx context.Context, userID string, toast notification.Toast) {
	f.toasts = append(f.toasts, toast)
}

func (f *fakeNotifier) lastType() notification.ToastType {
	if len(f.toasts) == 0 {
		return ""
	}
	return f.toasts[len(f.toasts)-1].Type
}

func strPtr(s string) *string { return &s }

func completeRecord() employee.Record {
	dob := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	return employee.Record{
		ID:        "emp-1",
		CompanyID: "co-1",
		Personal: employee.PersonalSection{
			FirstName:   "Sari",
			Gender:      employee.Female,
			PhoneNumber: "+6281234567890",
			Address:     strPtr("Jl. Melati 12"),
			DOB:         &dob,
			AvatarURL:   strPtr("avatars/emp-1/old.png"),
		},
		Emergency: employee.EmergencySection{
			ContactName: "Budi",
			PhoneNumber: "+6281234567891",
		},
		Employment: employee.EmploymentSection{
			WorkEmail:      "sari@acme.test",
			EmployeeCode:   "EMP-001",
			PositionTitle:  "Engineer",
			HireDate:       &hire,
			EmploymentType: employee.EmploymentTypePermanent,
		},
		Permissions: employee.PermissionsSection{
			Roles: []session.Role{session.RoleLeaveEmployee},
		},
		Leave:     &employee.LeaveSection{AnnualQuotaDays: 12},
		Timesheet: &employee.TimesheetSection{},
	}
}

type fixture struct {
	sessions   editsession.Service
	controller editsession.Controller
	repo       *fakeEmployeeRepo
	files      *fakeFileService
	notifier   *fakeNotifier
}

func newFixture(repo *fakeEmployeeRepo) *fixture {
	store := memory.NewEditSessionStore()
	sessions := serviceEditsession.NewEditSessionService(store, repo)
	files := &fakeFileService{uploadRef: "avatars/emp-1/new.png"}
	notifier := &fakeNotifier{}
	controller := NewEditFlowController(store, sessions, repo, files, notifier, nil)
	return &fixture{
		sessions:   sessions,
		controller: controller,
		repo:       repo,
		files:      files,
		notifier:   notifier,
	}
}

func viewer(roles ...session.Role) session.Session {
	return session.Session{
		UserID:      "user-1",
		EmployeeID:  strPtr("emp-99"),
		CompanyID:   "co-1",
		Roles:       session.NewRoleSet(roles...),
		LoginMethod: session.LoginMethodPassword,
	}
}

func (f *fixture) start(t *testing.T, v session.Session) string {
	t.Helper()
	resp, err := f.sessions.Start(context.Background(), v, "emp-1")
	require.NoError(t, err)
	return resp.ID
}

func (f *fixture) changeWorkEmail(t *testing.T, id, email string) {
	t.Helper()
	_, err := f.sessions.UpdateSection(context.Background(), "user-1", id, editsession.StepEmployment, editsession.UpdateSectionRequest{
		Employment: &employee.EmploymentSectionRequest{
			WorkEmail:      email,
			EmployeeCode:   "EMP-001",
			PositionTitle:  "Engineer",
			HireDate:       strPtr("2020-01-06"),
			EmploymentType: "permanent",
		},
	})
	require.NoError(t, err)
}

// The reinvite gate holds the save back exactly once: nothing is submitted
// until confirmation, and the confirmed save does not re-open the gate.
func TestSave_ReinviteGateFiresOnce(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	f.changeWorkEmail(t, id, "new@acme.test")

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, result.ReinviteRequired)
	assert.False(t, result.Saved)
	assert.Empty(t, f.repo.updated, "no payload submitted before confirmation")

	require.NoError(t, f.controller.ConfirmReinvite(ctx, "user-1", id))

	result, err = f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.False(t, result.ReinviteRequired)
	assert.True(t, result.Saved)
	require.Len(t, f.repo.updated, 1)
	assert.Equal(t, "new@acme.test", f.repo.updated[0].Employment.WorkEmail)
}

func TestSave_UnchangedEmailSkipsReinviteGate(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	id := f.start(t, viewer(session.RolePeopleAdmin))

	result, err := f.controller.Save(context.Background(), "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.False(t, result.ReinviteRequired)
	assert.True(t, result.Saved)
}

func TestSave_StagedAvatarUploadedAndPreviousDeleted(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.controller.StageAvatar(ctx, "user-1", id, "me.png", []byte{0x89, 0x50})
	require.NoError(t, err)

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, result.Saved)

	require.Len(t, f.repo.updated, 1)
	saved := f.repo.updated[0]
	require.NotNil(t, saved.Personal.AvatarURL)
	assert.Equal(t, "avatars/emp-1/new.png", *saved.Personal.AvatarURL)
	assert.Nil(t, saved.Personal.StagedAvatar)
	assert.Equal(t, []string{"avatars/emp-1/old.png"}, f.files.deleted)
}

func TestSave_AvatarUploadFailureAbortsSave(t *testing.T) {
	repo := &fakeEmployeeRepo{record: completeRecord()}
	f := newFixture(repo)
	f.files.uploadErr = assert.AnError
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.controller.StageAvatar(ctx, "user-1", id, "me.png", []byte{1})
	require.NoError(t, err)

	_, err = f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	assert.ErrorIs(t, err, employee.ErrAvatarUploadFailed)
	assert.Empty(t, repo.updated, "save aborted before submission")
	assert.Empty(t, f.files.deleted, "previous picture kept on failure")
	assert.Equal(t, notification.ToastError, f.notifier.lastType())
}

// A super admin saving a record with an incomplete section is redirected to
// the first incomplete step, with a warning toast.
func TestSave_IncompleteStepRedirect(t *testing.T) {
	rec := completeRecord()
	rec.Emergency.ContactName = ""
	f := newFixture(&fakeEmployeeRepo{record: rec})
	ctx := context.Background()
	id := f.start(t, viewer(session.RoleSuperAdmin))

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	require.NotNil(t, result.RedirectStep)
	assert.Equal(t, editsession.StepEmergency, *result.RedirectStep)
	assert.Equal(t, notification.ToastWarning, f.notifier.lastType())

	state, err := f.sessions.Get(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, editsession.StepEmergency, state.CurrentStep)
}

func TestSave_LeaveTabFlowSuppressesRedirect(t *testing.T) {
	rec := completeRecord()
	rec.Emergency.ContactName = ""
	f := newFixture(&fakeEmployeeRepo{record: rec})
	id := f.start(t, viewer(session.RoleSuperAdmin))

	result, err := f.controller.Save(context.Background(), "user-1", id, editsession.SaveOptions{FromLeaveTab: true})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Nil(t, result.RedirectStep)
	assert.Equal(t, notification.ToastSuccess, f.notifier.lastType())
}

// The first post-save check runs against the base required set. Fields that
// only the widened set requires, like the date of birth, do not trigger a
// redirect until a redirect has already happened once in the session.
func TestSave_FirstCheckUsesBaseRequiredSet(t *testing.T) {
	rec := completeRecord()
	rec.Personal.DOB = nil
	f := newFixture(&fakeEmployeeRepo{record: rec})
	ctx := context.Background()
	id := f.start(t, viewer(session.RoleSuperAdmin))

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Nil(t, result.RedirectStep)
	assert.Equal(t, notification.ToastSuccess, f.notifier.lastType())

	// Still no redirect on a later save: the widened set only arms once a
	// check has come back non-empty.
	result, err = f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.Nil(t, result.RedirectStep)
}

func TestSave_WidenedSetAppliesAfterFirstRedirect(t *testing.T) {
	rec := completeRecord()
	rec.Emergency.ContactName = ""
	rec.Personal.DOB = nil
	f := newFixture(&fakeEmployeeRepo{record: rec})
	ctx := context.Background()
	id := f.start(t, viewer(session.RoleSuperAdmin))

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	require.NotNil(t, result.RedirectStep)
	assert.Equal(t, editsession.StepEmergency, *result.RedirectStep)

	_, err = f.sessions.UpdateSection(ctx, "user-1", id, editsession.StepEmergency, editsession.UpdateSectionRequest{
		Emergency: &employee.EmergencySectionRequest{
			ContactName: "Budi",
			PhoneNumber: "+6281234567891",
		},
	})
	require.NoError(t, err)

	result, err = f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	require.NotNil(t, result.RedirectStep)
	assert.Equal(t, editsession.StepPersonal, *result.RedirectStep, "missing date of birth now counts")
}

func TestSave_NonElevatedViewerNeverRedirects(t *testing.T) {
	rec := completeRecord()
	rec.Emergency.ContactName = ""
	f := newFixture(&fakeEmployeeRepo{record: rec})
	id := f.start(t, viewer(session.RoleLeaveManager))

	result, err := f.controller.Save(context.Background(), "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.Nil(t, result.RedirectStep)
	assert.Equal(t, notification.ToastSuccess, f.notifier.lastType())
}

func TestSave_SupervisorConflictMapsToToast(t *testing.T) {
	repo := &fakeEmployeeRepo{
		record:    completeRecord(),
		updateErr: employee.ErrSupervisorConflictIndividual,
	}
	f := newFixture(repo)
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.controller.Save(context.Background(), "user-1", id, editsession.SaveOptions{})
	assert.ErrorIs(t, err, employee.ErrSupervisorConflictIndividual)

	require.NotEmpty(t, f.notifier.toasts)
	last := f.notifier.toasts[len(f.notifier.toasts)-1]
	assert.Equal(t, notification.ToastError, last.Type)
	assert.Contains(t, last.Description, "manages another employee")
}

func TestSave_SnapshotRefreshedAfterSuccess(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.sessions.UpdateSection(ctx, "user-1", id, editsession.StepPersonal, editsession.UpdateSectionRequest{
		Personal: &employee.PersonalSectionRequest{
			FirstName:   "Dewi",
			Gender:      "Female",
			PhoneNumber: "+6281234567890",
			Address:     strPtr("Jl. Melati 12"),
			DOB:         strPtr("1990-03-14"),
			AvatarURL:   strPtr("avatars/emp-1/old.png"),
		},
	})
	require.NoError(t, err)

	result, err := f.controller.Save(ctx, "user-1", id, editsession.SaveOptions{})
	require.NoError(t, err)
	assert.True(t, result.Saved)

	dirty, err := f.sessions.IsValuesChanged(ctx, "user-1", id)
	require.NoError(t, err)
	assert.False(t, dirty, "saved state becomes the new snapshot")

	state, err := f.sessions.Get(ctx, "user-1", id)
	require.NoError(t, err)
	assert.Equal(t, "Dewi", state.Record.Personal.FirstName)
}

func TestGoNext_MovesThroughWizard(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	decision, err := f.controller.GoNext(ctx, "user-1", id)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, editsession.StepEmergency, decision.CurrentStep)

	decision, err = f.controller.GoBack(ctx, "user-1", id)
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Equal(t, editsession.StepPersonal, decision.CurrentStep)
}

func TestGoBack_AtFirstStep(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.controller.GoBack(context.Background(), "user-1", id)
	assert.ErrorIs(t, err, editsession.ErrNothingToNavigate)
}

func TestGoNext_AtLastStep(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	for i := 0; i < 3; i++ {
		decision, err := f.controller.GoNext(ctx, "user-1", id)
		require.NoError(t, err)
		require.True(t, decision.Allowed)
	}

	_, err := f.controller.GoNext(ctx, "user-1", id)
	assert.ErrorIs(t, err, editsession.ErrNothingToNavigate)
}

func TestControllerScopedToStartingViewer(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	_, err := f.controller.Save(ctx, "user-2", id, editsession.SaveOptions{})
	assert.ErrorIs(t, err, editsession.ErrSessionNotFound)

	_, err = f.controller.GoNext(ctx, "user-2", id)
	assert.ErrorIs(t, err, editsession.ErrSessionNotFound)

	err = f.controller.ConfirmReinvite(ctx, "user-2", id)
	assert.ErrorIs(t, err, editsession.ErrSessionNotFound)

	assert.Empty(t, f.repo.updated)
}

func TestGoToStep_DirtyBlocks(t *testing.T) {
	f := newFixture(&fakeEmployeeRepo{record: completeRecord()})
	ctx := context.Background()
	id := f.start(t, viewer(session.RolePeopleAdmin))

	f.changeWorkEmail(t, id, "other@acme.test")

	decision, err := f.controller.GoToStep(ctx, "user-1", id, editsession.StepPermissions)
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Equal(t, editsession.ModalLeaveTab, decision.Modal.Type)
}
