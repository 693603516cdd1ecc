package user

import (
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
)

// User is an account that can open a session. Roles live on the account;
// the session reads them, this core never writes them.
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash *string
	GoogleID     *string
	EmployeeID   *string
	Roles        []session.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
