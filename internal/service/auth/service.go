package auth

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/oauth"
	"golang.org/x/crypto/bcrypt"
)

type authServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	google     oauth.GoogleService
}

func NewAuthService(
	userRepo user.UserRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) auth.AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		google:     google,
	}
}

// Login implements auth.AuthService.
func (a *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	usr, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}
	if usr.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(usr, session.LoginMethodPassword)
}

// LoginWithGoogle implements auth.AuthService.
func (a *authServiceImpl) LoginWithGoogle(ctx context.Context, code string) (auth.LoginResponse, error) {
	gUser, err := a.google.Exchange(ctx, code)
	if err != nil {
		return auth.LoginResponse{}, err
	}
	if !gUser.VerifiedEmail {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	usr, err := a.userRepo.GetByGoogleID(ctx, gUser.GoogleID)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, err
		}
		// First federated login for an invited account.
		usr, err = a.userRepo.GetByEmail(ctx, gUser.Email)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return auth.LoginResponse{}, auth.ErrUserNotFound
			}
			return auth.LoginResponse{}, err
		}
	}

	return a.issue(usr, session.LoginMethodGoogle)
}

// Refresh implements auth.AuthService. Roles are re-read from the user
// record so role changes take effect on the next rotation.
func (a *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, method, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidToken
	}

	usr, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidToken
		}
		return auth.LoginResponse{}, err
	}

	return a.issue(usr, method)
}

func (a *authServiceImpl) issue(usr user.User, method session.LoginMethod) (auth.LoginResponse, error) {
	roles := session.NewRoleSet(usr.Roles...)
	token, expiresAt, err := a.jwtService.GenerateAccessToken(
		usr.ID, usr.Email, usr.EmployeeID, usr.CompanyID, roles, method,
	)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(usr.ID, method)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken:      token,
		ExpiresAt:        expiresAt,
		LoginMethod:      string(method),
		Roles:            roles.Strings(),
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
