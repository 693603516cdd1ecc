package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	id, company_id, email, password_hash, google_id, employee_id, roles, created_at, updated_at
`

func (u *userRepositoryImpl) scanUser(row pgx.Row) (user.User, error) {
	var usr user.User
	var roles []string
	err := row.Scan(
		&usr.ID, &usr.CompanyID, &usr.Email, &usr.PasswordHash,
		&usr.GoogleID, &usr.EmployeeID, &roles, &usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to scan user: %w", err)
	}
	usr.Roles = parseRoles(roles)
	return usr, nil
}

// GetByID implements user.UserRepository.
func (u *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`
	return u.scanUser(q.QueryRow(ctx, query, id))
}

// GetByEmail implements user.UserRepository.
func (u *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL`
	return u.scanUser(q.QueryRow(ctx, query, email))
}

// GetByGoogleID implements user.UserRepository.
func (u *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	q := GetQuerier(ctx, u.db)
	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1 AND deleted_at IS NULL`
	return u.scanUser(q.QueryRow(ctx, query, googleID))
}
