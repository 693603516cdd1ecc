package employee

import (
	"bytes"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/shopspring/decimal"
)

// The Equal methods below define exactly what counts as a change for
// dirty-tracking. They are written out field by field so the contract stays
// auditable; do not replace them with reflection.

// Equal reports whether two records hold the same edited content.
// Timestamps and identity are excluded: they never make a record dirty.
func (r Record) Equal(other Record) bool {
	return r.Personal.Equal(other.Personal) &&
		r.Emergency.Equal(other.Emergency) &&
		r.Employment.Equal(other.Employment) &&
		r.Permissions.Equal(other.Permissions) &&
		leaveEqual(r.Leave, other.Leave) &&
		timesheetEqual(r.Timesheet, other.Timesheet)
}

func (p PersonalSection) Equal(other PersonalSection) bool {
	return p.FirstName == other.FirstName &&
		p.LastName == other.LastName &&
		p.Gender == other.Gender &&
		p.PhoneNumber == other.PhoneNumber &&
		strPtrEqual(p.Address, other.Address) &&
		strPtrEqual(p.PlaceOfBirth, other.PlaceOfBirth) &&
		timePtrEqual(p.DOB, other.DOB) &&
		strPtrEqual(p.AvatarURL, other.AvatarURL) &&
		stagedFileEqual(p.StagedAvatar, other.StagedAvatar)
}

func (e EmergencySection) Equal(other EmergencySection) bool {
	return e.ContactName == other.ContactName &&
		e.Relationship == other.Relationship &&
		e.PhoneNumber == other.PhoneNumber &&
		strPtrEqual(e.Address, other.Address)
}

func (e EmploymentSection) Equal(other EmploymentSection) bool {
	return e.WorkEmail == other.WorkEmail &&
		e.EmployeeCode == other.EmployeeCode &&
		e.PositionTitle == other.PositionTitle &&
		strPtrEqual(e.BranchName, other.BranchName) &&
		timePtrEqual(e.HireDate, other.HireDate) &&
		e.EmploymentType == other.EmploymentType &&
		decimalPtrEqual(e.BaseSalary, other.BaseSalary) &&
		strPtrEqual(e.PrimaryManagerID, other.PrimaryManagerID) &&
		strPtrEqual(e.SecondaryManagerID, other.SecondaryManagerID) &&
		strPtrEqual(e.TeamID, other.TeamID)
}

// Equal treats the role list as a set: order does not count as a change.
func (p PermissionsSection) Equal(other PermissionsSection) bool {
	if len(p.Roles) != len(other.Roles) {
		return false
	}
	set := make(map[session.Role]struct{}, len(p.Roles))
	for _, r := range p.Roles {
		set[r] = struct{}{}
	}
	for _, r := range other.Roles {
		if _, ok := set[r]; !ok {
			return false
		}
	}
	return true
}

func leaveEqual(a, b *LeaveSection) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.AnnualQuotaDays == b.AnnualQuotaDays &&
		a.CarryOverEnabled == b.CarryOverEnabled &&
		strPtrEqual(a.ApproverID, b.ApproverID)
}

func timesheetEqual(a, b *TimesheetSection) bool {
	if a == nil || b == nil {
		return a == b
	}
	return strPtrEqual(a.WorkScheduleID, b.WorkScheduleID) &&
		a.OvertimeEligible == b.OvertimeEligible
}

func stagedFileEqual(a, b *StagedFile) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Filename == b.Filename && bytes.Equal(a.Content, b.Content)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
