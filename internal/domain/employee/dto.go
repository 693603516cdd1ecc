package employee

import (
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type PersonalSectionRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Gender       string  `json:"gender"`
	PhoneNumber  string  `json:"phone_number"`
	Address      *string `json:"address,omitempty"`
	PlaceOfBirth *string `json:"place_of_birth,omitempty"`
	DOB          *string `json:"dob,omitempty"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
}

func (r PersonalSectionRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Gender != "" && r.Gender != string(Male) && r.Gender != string(Female) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "must be Male or Female"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "dob", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo writes the request into the working copy's personal section. The
// staged avatar is left untouched: it is managed by the upload endpoint.
func (r PersonalSectionRequest) ApplyTo(s *PersonalSection) {
	s.FirstName = r.FirstName
	s.LastName = r.LastName
	s.Gender = Gender(r.Gender)
	s.PhoneNumber = r.PhoneNumber
	s.Address = r.Address
	s.PlaceOfBirth = r.PlaceOfBirth
	s.DOB = parseDatePtr(r.DOB)
	if r.AvatarURL != nil {
		s.AvatarURL = r.AvatarURL
	}
}

type EmergencySectionRequest struct {
	ContactName  string  `json:"contact_name"`
	Relationship string  `json:"relationship"`
	PhoneNumber  string  `json:"phone_number"`
	Address      *string `json:"address,omitempty"`
}

func (r EmergencySectionRequest) Validate() error {
	return nil
}

func (r EmergencySectionRequest) ApplyTo(s *EmergencySection) {
	s.ContactName = r.ContactName
	s.Relationship = r.Relationship
	s.PhoneNumber = r.PhoneNumber
	s.Address = r.Address
}

type EmploymentSectionRequest struct {
	WorkEmail          string  `json:"work_email"`
	EmployeeCode       string  `json:"employee_code"`
	PositionTitle      string  `json:"position_title"`
	BranchName         *string `json:"branch_name,omitempty"`
	HireDate           *string `json:"hire_date,omitempty"`
	EmploymentType     string  `json:"employment_type"`
	BaseSalary         *string `json:"base_salary,omitempty"`
	PrimaryManagerID   *string `json:"primary_manager_id,omitempty"`
	SecondaryManagerID *string `json:"secondary_manager_id,omitempty"`
	TeamID             *string `json:"team_id,omitempty"`
}

func (r EmploymentSectionRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.WorkEmail != "" && !validator.IsValidEmail(r.WorkEmail) {
		errs = append(errs, validator.ValidationError{Field: "work_email", Message: "invalid email address"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be a decimal number"})
		}
	}
	switch EmploymentType(r.EmploymentType) {
	case "", EmploymentTypePermanent, EmploymentTypeProbation, EmploymentTypeContract, EmploymentTypeInternship:
	default:
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "invalid employment type"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r EmploymentSectionRequest) ApplyTo(s *EmploymentSection) {
	s.WorkEmail = r.WorkEmail
	s.EmployeeCode = r.EmployeeCode
	s.PositionTitle = r.PositionTitle
	s.BranchName = r.BranchName
	s.HireDate = parseDatePtr(r.HireDate)
	s.EmploymentType = EmploymentType(r.EmploymentType)
	if r.BaseSalary != nil {
		if d, err := decimal.NewFromString(*r.BaseSalary); err == nil {
			s.BaseSalary = &d
		}
	} else {
		s.BaseSalary = nil
	}
	s.PrimaryManagerID = r.PrimaryManagerID
	s.SecondaryManagerID = r.SecondaryManagerID
	s.TeamID = r.TeamID
}

type PermissionsSectionRequest struct {
	Roles []string `json:"roles"`
}

func (r PermissionsSectionRequest) Validate() error {
	var errs validator.ValidationErrors
	for _, t := range r.Roles {
		if !session.Role(t).IsValid() {
			errs = append(errs, validator.ValidationError{Field: "roles", Message: "unknown role tag: " + t})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r PermissionsSectionRequest) ApplyTo(s *PermissionsSection) {
	set := session.ParseRoleSet(r.Roles)
	roles := make([]session.Role, 0, len(set))
	for _, role := range session.AllRoles() {
		if set.Has(role) {
			roles = append(roles, role)
		}
	}
	s.Roles = roles
}

type LeaveSectionRequest struct {
	AnnualQuotaDays  int     `json:"annual_quota_days"`
	CarryOverEnabled bool    `json:"carry_over_enabled"`
	ApproverID       *string `json:"approver_id,omitempty"`
}

func (r LeaveSectionRequest) Validate() error {
	if r.AnnualQuotaDays < 0 {
		return validator.ValidationErrors{{Field: "annual_quota_days", Message: "must not be negative"}}
	}
	return nil
}

func (r LeaveSectionRequest) ApplyTo(s *LeaveSection) {
	s.AnnualQuotaDays = r.AnnualQuotaDays
	s.CarryOverEnabled = r.CarryOverEnabled
	s.ApproverID = r.ApproverID
}

type TimesheetSectionRequest struct {
	WorkScheduleID   *string `json:"work_schedule_id,omitempty"`
	OvertimeEligible bool    `json:"overtime_eligible"`
}

func (r TimesheetSectionRequest) Validate() error {
	return nil
}

func (r TimesheetSectionRequest) ApplyTo(s *TimesheetSection) {
	s.WorkScheduleID = r.WorkScheduleID
	s.OvertimeEligible = r.OvertimeEligible
}

// RecordResponse is the wire shape of a record.
type RecordResponse struct {
	ID          string                    `json:"id"`
	CompanyID   string                    `json:"company_id"`
	Personal    PersonalSectionRequest    `json:"personal"`
	Emergency   EmergencySectionRequest   `json:"emergency"`
	Employment  EmploymentSectionRequest  `json:"employment"`
	Permissions PermissionsSectionRequest `json:"permissions"`
	Leave       *LeaveSectionRequest      `json:"leave,omitempty"`
	Timesheet   *TimesheetSectionRequest  `json:"timesheet,omitempty"`
	UpdatedAt   string                    `json:"updated_at"`
}

// ToResponse maps a record to its wire shape.
func ToResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:        rec.ID,
		CompanyID: rec.CompanyID,
		Personal: PersonalSectionRequest{
			FirstName:    rec.Personal.FirstName,
			LastName:     rec.Personal.LastName,
			Gender:       string(rec.Personal.Gender),
			PhoneNumber:  rec.Personal.PhoneNumber,
			Address:      rec.Personal.Address,
			PlaceOfBirth: rec.Personal.PlaceOfBirth,
			DOB:          formatDatePtr(rec.Personal.DOB),
			AvatarURL:    rec.Personal.AvatarURL,
		},
		Emergency: EmergencySectionRequest{
			ContactName:  rec.Emergency.ContactName,
			Relationship: rec.Emergency.Relationship,
			PhoneNumber:  rec.Emergency.PhoneNumber,
			Address:      rec.Emergency.Address,
		},
		Employment: EmploymentSectionRequest{
			WorkEmail:          rec.Employment.WorkEmail,
			EmployeeCode:       rec.Employment.EmployeeCode,
			PositionTitle:      rec.Employment.PositionTitle,
			BranchName:         rec.Employment.BranchName,
			HireDate:           formatDatePtr(rec.Employment.HireDate),
			EmploymentType:     string(rec.Employment.EmploymentType),
			BaseSalary:         formatDecimalPtr(rec.Employment.BaseSalary),
			PrimaryManagerID:   rec.Employment.PrimaryManagerID,
			SecondaryManagerID: rec.Employment.SecondaryManagerID,
			TeamID:             rec.Employment.TeamID,
		},
		Permissions: PermissionsSectionRequest{Roles: rolesToStrings(rec.Permissions.Roles)},
		UpdatedAt:   rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
	if rec.Leave != nil {
		resp.Leave = &LeaveSectionRequest{
			AnnualQuotaDays:  rec.Leave.AnnualQuotaDays,
			CarryOverEnabled: rec.Leave.CarryOverEnabled,
			ApproverID:       rec.Leave.ApproverID,
		}
	}
	if rec.Timesheet != nil {
		resp.Timesheet = &TimesheetSectionRequest{
			WorkScheduleID:   rec.Timesheet.WorkScheduleID,
			OvertimeEligible: rec.Timesheet.OvertimeEligible,
		}
	}
	return resp
}

func rolesToStrings(roles []session.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func formatDecimalPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
