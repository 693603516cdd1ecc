package employee

import (
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// Clone returns an independent copy of the record. The working copy of an
// edit session must never share pointers with its snapshot, otherwise a
// section setter would silently dirty both sides.
func (r Record) Clone() Record {
	out := r
	out.Personal = r.Personal.clone()
	out.Emergency = r.Emergency.clone()
	out.Employment = r.Employment.clone()
	out.Permissions = r.Permissions.clone()
	if r.Leave != nil {
		l := *r.Leave
		l.ApproverID = strPtrClone(r.Leave.ApproverID)
		out.Leave = &l
	}
	if r.Timesheet != nil {
		t := *r.Timesheet
		t.WorkScheduleID = strPtrClone(r.Timesheet.WorkScheduleID)
		out.Timesheet = &t
	}
	return out
}

func (p PersonalSection) clone() PersonalSection {
	out := p
	out.Address = strPtrClone(p.Address)
	out.PlaceOfBirth = strPtrClone(p.PlaceOfBirth)
	out.DOB = timePtrClone(p.DOB)
	out.AvatarURL = strPtrClone(p.AvatarURL)
	if p.StagedAvatar != nil {
		content := make([]byte, len(p.StagedAvatar.Content))
		copy(content, p.StagedAvatar.Content)
		out.StagedAvatar = &StagedFile{Filename: p.StagedAvatar.Filename, Content: content}
	}
	return out
}

func (e EmergencySection) clone() EmergencySection {
	out := e
	out.Address = strPtrClone(e.Address)
	return out
}

func (e EmploymentSection) clone() EmploymentSection {
	out := e
	out.BranchName = strPtrClone(e.BranchName)
	out.HireDate = timePtrClone(e.HireDate)
	out.PrimaryManagerID = strPtrClone(e.PrimaryManagerID)
	out.SecondaryManagerID = strPtrClone(e.SecondaryManagerID)
	out.TeamID = strPtrClone(e.TeamID)
	if e.BaseSalary != nil {
		d := *e.BaseSalary
		out.BaseSalary = &d
	}
	return out
}

func (p PermissionsSection) clone() PermissionsSection {
	out := p
	if p.Roles != nil {
		out.Roles = make([]session.Role, len(p.Roles))
		copy(out.Roles, p.Roles)
	}
	return out
}

func strPtrClone(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func timePtrClone(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	t := *p
	return &t
}
