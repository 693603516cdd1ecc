package employee

import "context"

type EmployeeRepository interface {
	// GetRecord loads the full multi-section record.
	GetRecord(ctx context.Context, id string, companyID string) (Record, error)

	// UpdateRecord persists every section in a single update. Staged
	// avatars must already be resolved to a canonical URL by the caller.
	UpdateRecord(ctx context.Context, rec Record) error

	// IsSupervisedBy reports whether the viewer supervises the employee as
	// primary manager, secondary manager, or team supervisor.
	IsSupervisedBy(ctx context.Context, employeeID string, viewerEmployeeID string) (bool, error)
}
