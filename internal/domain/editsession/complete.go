package editsession

import (
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
)

// IncompleteStep reports the first wizard step whose required fields are not
// filled, checked in fixed priority order: personal, emergency, employment.
// The super-admin flow widens the required set on the personal and
// employment sections. Returns nil when everything required is present.
func IncompleteStep(rec employee.Record, superAdminFlow bool) *FormStep {
	if step := incompletePersonal(rec.Personal, superAdminFlow); step != nil {
		return step
	}
	if step := incompleteEmergency(rec.Emergency); step != nil {
		return step
	}
	return incompleteEmployment(rec.Employment, superAdminFlow)
}

func incompletePersonal(p employee.PersonalSection, superAdminFlow bool) *FormStep {
	if p.FirstName == "" || p.Gender == "" || p.PhoneNumber == "" {
		return stepPtr(StepPersonal)
	}
	if superAdminFlow && (p.DOB == nil || p.Address == nil || *p.Address == "") {
		return stepPtr(StepPersonal)
	}
	return nil
}

func incompleteEmergency(e employee.EmergencySection) *FormStep {
	if e.ContactName == "" || e.PhoneNumber == "" {
		return stepPtr(StepEmergency)
	}
	return nil
}

func incompleteEmployment(e employee.EmploymentSection, superAdminFlow bool) *FormStep {
	if e.WorkEmail == "" || e.EmployeeCode == "" || e.PositionTitle == "" {
		return stepPtr(StepEmployment)
	}
	if superAdminFlow && (e.HireDate == nil || e.EmploymentType == "") {
		return stepPtr(StepEmployment)
	}
	return nil
}

func stepPtr(s FormStep) *FormStep {
	return &s
}
