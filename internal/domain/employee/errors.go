package employee

import "errors"

var (
	ErrEmployeeNotFound             = errors.New("employee not found")
	ErrEmployeeCodeExists           = errors.New("employee code already exists")
	ErrWorkEmailExists              = errors.New("work email already registered in this company")
	ErrInvalidGender                = errors.New("gender must be Male or Female")
	ErrInvalidEmploymentType        = errors.New("invalid employment type")
	ErrSupervisorConflictIndividual = errors.New("supervisor already assigned to this employee individually")
	ErrSupervisorConflictTeam       = errors.New("supervisor reallocation conflicts with a team assignment")
	ErrAvatarUploadFailed           = errors.New("failed to upload profile picture")
	ErrUnauthorized                 = errors.New("unauthorized to access this employee")
)
