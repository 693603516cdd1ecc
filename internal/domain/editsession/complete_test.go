package editsession

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledRecord() employee.Record {
	dob := time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2020, 1, 6, 0, 0, 0, 0, time.UTC)
	addr := "Jl. Melati 12"
	return employee.Record{
		Personal: employee.PersonalSection{
			FirstName:   "Sari",
			Gender:      employee.Female,
			PhoneNumber: "+6281234567890",
			Address:     &addr,
			DOB:         &dob,
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
	}
}

func TestIncompleteStep_CompleteRecord(t *testing.T) {
	assert.Nil(t, IncompleteStep(filledRecord(), false))
	assert.Nil(t, IncompleteStep(filledRecord(), true))
}

// Personal wins over emergency wins over employment when several sections
// are incomplete at once.
func TestIncompleteStep_PriorityOrder(t *testing.T) {
	rec := filledRecord()
	rec.Personal.FirstName = ""
	rec.Emergency.ContactName = ""
	rec.Employment.WorkEmail = ""

	step := IncompleteStep(rec, false)
	require.NotNil(t, step)
	assert.Equal(t, StepPersonal, *step)

	rec.Personal.FirstName = "Sari"
	step = IncompleteStep(rec, false)
	require.NotNil(t, step)
	assert.Equal(t, StepEmergency, *step)

	rec.Emergency.ContactName = "Budi"
	step = IncompleteStep(rec, false)
	require.NotNil(t, step)
	assert.Equal(t, StepEmployment, *step)
}

// The super-admin flow widens the required set; the base flow accepts the
// same record.
func TestIncompleteStep_SuperAdminFlowWidens(t *testing.T) {
	rec := filledRecord()
	rec.Personal.DOB = nil
	assert.Nil(t, IncompleteStep(rec, false))

	step := IncompleteStep(rec, true)
	require.NotNil(t, step)
	assert.Equal(t, StepPersonal, *step)

	rec = filledRecord()
	rec.Employment.HireDate = nil
	assert.Nil(t, IncompleteStep(rec, false))

	step = IncompleteStep(rec, true)
	require.NotNil(t, step)
	assert.Equal(t, StepEmployment, *step)
}
