package employee

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleRecord() Record {
	dob := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	salary := decimal.NewFromInt(7500000)

	return Record{
		ID:        "emp-1",
		CompanyID: "co-1",
		Personal: PersonalSection{
			FirstName:   "Sari",
			LastName:    "Wijaya",
			Gender:      Female,
			PhoneNumber: "+6281234567890",
			Address:     strPtr("Jl. Melati 12"),
			DOB:         &dob,
			AvatarURL:   strPtr("avatars/emp-1/a.png"),
		},
		Emergency: EmergencySection{
			ContactName:  "Budi Wijaya",
			Relationship: "Spouse",
			PhoneNumber:  "+6281234567891",
		},
		Employment: EmploymentSection{
			WorkEmail:     "sari@acme.test",
			EmployeeCode:  "EMP-001",
			PositionTitle: "Engineer",
			HireDate:      &hire,
			EmploymentType: EmploymentTypePermanent,
			BaseSalary:    &salary,
			PrimaryManagerID: strPtr("emp-9"),
		},
		Permissions: PermissionsSection{
			Roles: []session.Role{session.RoleLeaveEmployee, session.RolePeopleEmployee},
		},
		Leave: &LeaveSection{
			AnnualQuotaDays:  12,
			CarryOverEnabled: true,
		},
		Timesheet: &TimesheetSection{
			WorkScheduleID:   strPtr("ws-1"),
			OvertimeEligible: false,
		},
		CreatedAt: time.Date(2020, 1, 6, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestRecordEqual_CloneIsEqual(t *testing.T) {
	rec := sampleRecord()
	assert.True(t, rec.Clone().Equal(rec))
}

func TestRecordEqual_IgnoresTimestamps(t *testing.T) {
	rec := sampleRecord()
	other := rec.Clone()
	other.UpdatedAt = other.UpdatedAt.Add(time.Hour)
	other.CreatedAt = other.CreatedAt.Add(time.Hour)
	assert.True(t, other.Equal(rec))
}

// Mutating any tracked field flips equality; restoring it flips it back.
func TestRecordEqual_SingleFieldFlips(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	working.Personal.FirstName = "Dewi"
	assert.False(t, working.Equal(rec))
	working.Personal.FirstName = "Sari"
	assert.True(t, working.Equal(rec))

	working.Employment.WorkEmail = "dewi@acme.test"
	assert.False(t, working.Equal(rec))
	working.Employment.WorkEmail = "sari@acme.test"
	assert.True(t, working.Equal(rec))

	working.Leave.AnnualQuotaDays = 15
	assert.False(t, working.Equal(rec))
	working.Leave.AnnualQuotaDays = 12
	assert.True(t, working.Equal(rec))
}

func TestRecordEqual_PointerFields(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	working.Personal.Address = nil
	assert.False(t, working.Equal(rec))

	working.Personal.Address = strPtr("Jl. Melati 12")
	assert.True(t, working.Equal(rec), "distinct pointers to equal values compare equal")
}

func TestRecordEqual_DecimalByValue(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	// Same numeric value in a different representation.
	d := decimal.RequireFromString("7500000.00")
	working.Employment.BaseSalary = &d
	assert.True(t, working.Equal(rec))

	raise := decimal.NewFromInt(8000000)
	working.Employment.BaseSalary = &raise
	assert.False(t, working.Equal(rec))
}

func TestRecordEqual_RolesAsSet(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	working.Permissions.Roles = []session.Role{session.RolePeopleEmployee, session.RoleLeaveEmployee}
	assert.True(t, working.Equal(rec), "role order must not matter")

	working.Permissions.Roles = append(working.Permissions.Roles, session.RoleLeaveAdmin)
	assert.False(t, working.Equal(rec))
}

func TestRecordEqual_NilSectionPointers(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	working.Leave = nil
	assert.False(t, working.Equal(rec))

	rec.Leave = nil
	assert.True(t, working.Equal(rec))
}

func TestRecordEqual_StagedAvatar(t *testing.T) {
	rec := sampleRecord()
	working := rec.Clone()

	working.Personal.StagedAvatar = &StagedFile{Filename: "new.png", Content: []byte{1, 2, 3}}
	assert.False(t, working.Equal(rec))

	working.Personal.StagedAvatar = nil
	assert.True(t, working.Equal(rec))
}

// A clone must not share mutable state with its source.
func TestClone_Independence(t *testing.T) {
	rec := sampleRecord()
	clone := rec.Clone()

	*clone.Personal.Address = "changed"
	assert.Equal(t, "Jl. Melati 12", *rec.Personal.Address)

	clone.Leave.AnnualQuotaDays = 99
	assert.Equal(t, 12, rec.Leave.AnnualQuotaDays)

	clone.Timesheet.OvertimeEligible = true
	assert.False(t, rec.Timesheet.OvertimeEligible)

	clone.Permissions.Roles[0] = session.RoleSuperAdmin
	assert.Equal(t, session.RoleLeaveEmployee, rec.Permissions.Roles[0])

	*clone.Employment.BaseSalary = decimal.NewFromInt(1)
	assert.True(t, rec.Employment.BaseSalary.Equal(decimal.NewFromInt(7500000)))
}
