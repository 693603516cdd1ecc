package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetRecord implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetRecord(ctx context.Context, id string, companyID string) (employee.Record, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, company_id,
			first_name, last_name, gender, phone_number, address, place_of_birth, dob, avatar_url,
			emergency_contact_name, emergency_relationship, emergency_phone_number, emergency_address,
			work_email, employee_code, position_title, branch_name, hire_date, employment_type,
			base_salary, primary_manager_id, secondary_manager_id, team_id,
			module_roles,
			leave_annual_quota_days, leave_carry_over_enabled, leave_approver_id,
			ts_work_schedule_id, ts_overtime_eligible,
			created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
	`

	var rec employee.Record
	var roles []string
	var leaveSection employee.LeaveSection
	var timesheetSection employee.TimesheetSection

	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&rec.ID, &rec.CompanyID,
		&rec.Personal.FirstName, &rec.Personal.LastName, &rec.Personal.Gender,
		&rec.Personal.PhoneNumber, &rec.Personal.Address, &rec.Personal.PlaceOfBirth,
		&rec.Personal.DOB, &rec.Personal.AvatarURL,
		&rec.Emergency.ContactName, &rec.Emergency.Relationship,
		&rec.Emergency.PhoneNumber, &rec.Emergency.Address,
		&rec.Employment.WorkEmail, &rec.Employment.EmployeeCode, &rec.Employment.PositionTitle,
		&rec.Employment.BranchName, &rec.Employment.HireDate, &rec.Employment.EmploymentType,
		&rec.Employment.BaseSalary, &rec.Employment.PrimaryManagerID,
		&rec.Employment.SecondaryManagerID, &rec.Employment.TeamID,
		&roles,
		&leaveSection.AnnualQuotaDays, &leaveSection.CarryOverEnabled, &leaveSection.ApproverID,
		&timesheetSection.WorkScheduleID, &timesheetSection.OvertimeEligible,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Record{}, employee.ErrEmployeeNotFound
		}
		return employee.Record{}, fmt.Errorf("failed to get employee record: %w", err)
	}

	rec.Permissions.Roles = parseRoles(roles)
	rec.Leave = &leaveSection
	rec.Timesheet = &timesheetSection

	return rec, nil
}

// UpdateRecord implements employee.EmployeeRepository. Every section is
// written in one statement so the save is all-or-nothing.
func (e *employeeRepositoryImpl) UpdateRecord(ctx context.Context, rec employee.Record) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			first_name = $1, last_name = $2, gender = $3, phone_number = $4,
			address = $5, place_of_birth = $6, dob = $7, avatar_url = $8,
			emergency_contact_name = $9, emergency_relationship = $10,
			emergency_phone_number = $11, emergency_address = $12,
			work_email = $13, employee_code = $14, position_title = $15,
			branch_name = $16, hire_date = $17, employment_type = $18,
			base_salary = $19, primary_manager_id = $20, secondary_manager_id = $21,
			team_id = $22, module_roles = $23,
			leave_annual_quota_days = COALESCE($24, leave_annual_quota_days),
			leave_carry_over_enabled = COALESCE($25, leave_carry_over_enabled),
			leave_approver_id = CASE WHEN $24 IS NULL THEN leave_approver_id ELSE $26 END,
			ts_work_schedule_id = CASE WHEN $27 IS NULL THEN ts_work_schedule_id ELSE $28 END,
			ts_overtime_eligible = COALESCE($27, ts_overtime_eligible),
			updated_at = NOW()
		WHERE id = $29 AND company_id = $30 AND deleted_at IS NULL
		RETURNING id
	`

	var leaveQuota *int
	var leaveCarryOver *bool
	var leaveApprover *string
	if rec.Leave != nil {
		leaveQuota = &rec.Leave.AnnualQuotaDays
		leaveCarryOver = &rec.Leave.CarryOverEnabled
		leaveApprover = rec.Leave.ApproverID
	}

	var tsOvertime *bool
	var tsSchedule *string
	if rec.Timesheet != nil {
		tsOvertime = &rec.Timesheet.OvertimeEligible
		tsSchedule = rec.Timesheet.WorkScheduleID
	}

	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.Personal.FirstName, rec.Personal.LastName, rec.Personal.Gender, rec.Personal.PhoneNumber,
		rec.Personal.Address, rec.Personal.PlaceOfBirth, rec.Personal.DOB, rec.Personal.AvatarURL,
		rec.Emergency.ContactName, rec.Emergency.Relationship,
		rec.Emergency.PhoneNumber, rec.Emergency.Address,
		rec.Employment.WorkEmail, rec.Employment.EmployeeCode, rec.Employment.PositionTitle,
		rec.Employment.BranchName, rec.Employment.HireDate, rec.Employment.EmploymentType,
		rec.Employment.BaseSalary, rec.Employment.PrimaryManagerID, rec.Employment.SecondaryManagerID,
		rec.Employment.TeamID, rolesToStrings(rec.Permissions.Roles),
		leaveQuota, leaveCarryOver, leaveApprover,
		tsOvertime, tsSchedule,
		rec.ID, rec.CompanyID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return mapUpdateError(err)
	}

	return nil
}

// mapUpdateError translates constraint violations into domain errors the
// save flow maps to specific toasts.
func mapUpdateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.ConstraintName {
		case "employees_employee_code_company_key":
			return employee.ErrEmployeeCodeExists
		case "employees_work_email_company_key":
			return employee.ErrWorkEmailExists
		case "employees_primary_manager_assignment_excl":
			return employee.ErrSupervisorConflictIndividual
		case "employees_team_supervisor_assignment_excl":
			return employee.ErrSupervisorConflictTeam
		}
	}
	return fmt.Errorf("failed to update employee record: %w", err)
}

// IsSupervisedBy implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) IsSupervisedBy(ctx context.Context, employeeID string, viewerEmployeeID string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM employees emp
			LEFT JOIN teams t ON t.id = emp.team_id
			WHERE emp.id = $1
			  AND emp.deleted_at IS NULL
			  AND (
				emp.primary_manager_id = $2
				OR emp.secondary_manager_id = $2
				OR t.supervisor_id = $2
			  )
		)
	`

	var supervised bool
	if err := q.QueryRow(ctx, query, employeeID, viewerEmployeeID).Scan(&supervised); err != nil {
		return false, fmt.Errorf("failed to check supervision: %w", err)
	}

	return supervised, nil
}

func parseRoles(tags []string) []session.Role {
	roles := make([]session.Role, 0, len(tags))
	for _, t := range tags {
		r := session.Role(t)
		if r.IsValid() {
			roles = append(roles, r)
		}
	}
	return roles
}

func rolesToStrings(roles []session.Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
