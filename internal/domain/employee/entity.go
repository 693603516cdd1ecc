package employee

import (
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/shopspring/decimal"
)

// Record is the multi-section employee record edited by the wizard. The
// sections mirror the form steps; Leave and Timesheet are nil when the
// viewer's step set does not include them.
type Record struct {
	ID          string
	CompanyID   string
	Personal    PersonalSection
	Emergency   EmergencySection
	Employment  EmploymentSection
	Permissions PermissionsSection
	Leave       *LeaveSection
	Timesheet   *TimesheetSection
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName is used in toasts and generic failure messages.
func (r Record) DisplayName() string {
	if r.Personal.LastName == "" {
		return r.Personal.FirstName
	}
	return r.Personal.FirstName + " " + r.Personal.LastName
}

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

type PersonalSection struct {
	FirstName    string
	LastName     string
	Gender       Gender
	PhoneNumber  string
	Address      *string
	PlaceOfBirth *string
	DOB          *time.Time
	AvatarURL    *string
	// StagedAvatar holds a picture selected but not yet uploaded. It is
	// swapped for a canonical AvatarURL during save, never persisted.
	StagedAvatar *StagedFile
}

// StagedFile is a locally staged upload.
type StagedFile struct {
	Filename string
	Content  []byte
}

type EmergencySection struct {
	ContactName  string
	Relationship string
	PhoneNumber  string
	Address      *string
}

type EmploymentType string

const (
	EmploymentTypePermanent  EmploymentType = "permanent"
	EmploymentTypeProbation  EmploymentType = "probation"
	EmploymentTypeContract   EmploymentType = "contract"
	EmploymentTypeInternship EmploymentType = "internship"
)

type EmploymentSection struct {
	WorkEmail          string
	EmployeeCode       string
	PositionTitle      string
	BranchName         *string
	HireDate           *time.Time
	EmploymentType     EmploymentType
	BaseSalary         *decimal.Decimal
	PrimaryManagerID   *string
	SecondaryManagerID *string
	TeamID             *string
}

type PermissionsSection struct {
	Roles []session.Role
}

type LeaveSection struct {
	AnnualQuotaDays  int
	CarryOverEnabled bool
	ApproverID       *string
}

type TimesheetSection struct {
	WorkScheduleID   *string
	OvertimeEligible bool
}
