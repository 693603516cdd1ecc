package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	// GenerateAccessToken issues an access token whose claims carry the
	// full role set and the login method used to establish the session.
	GenerateAccessToken(userID string, email string, employeeID *string, companyID string, roles session.RoleSet, loginMethod session.LoginMethod) (token string, expiresAt int64, err error)
	GenerateRefreshToken(userID string, loginMethod session.LoginMethod) (token string, expiresAt int64, err error)
	// ValidateRefreshToken verifies a refresh token and returns the subject
	// and the login method the session was established with.
	ValidateRefreshToken(tokenString string) (userID string, loginMethod session.LoginMethod, err error)
	GenerateSSEToken(userID string) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (userID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  string
	refreshTokenExpirationTime string
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string, refreshTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateAccessToken(userID string, email string, employeeID *string, companyID string, roles session.RoleSet, loginMethod session.LoginMethod) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":      userID,
		"email":        email,
		"employee_id":  j.returnValueOrNil(employeeID),
		"company_id":   companyID,
		"roles":        roles.Strings(),
		"login_method": string(loginMethod),
		"type":         "access",
		"exp":          expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(userID string, loginMethod session.LoginMethod) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.refreshTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":      userID,
		"login_method": string(loginMethod),
		"exp":          expiresAt,
		"type":         "refresh",
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) ValidateRefreshToken(tokenString string) (string, session.LoginMethod, error) {
	if j.IsTokenRevoked(tokenString) {
		return "", "", jwt.ErrInvalidJWT()
	}

	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", "", err
	}
	if tokenType, ok := token.Get("type"); !ok || tokenType != "refresh" {
		return "", "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", "", jwt.ErrInvalidJWT()
	}

	method := session.LoginMethodPassword
	if v, ok := token.Get("login_method"); ok {
		if m, ok := v.(string); ok {
			method = session.LoginMethod(m)
		}
	}

	return userID, method, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// GenerateSSEToken generates a short-lived token for SSE connections
func (j *JWTService) GenerateSSEToken(userID string) (token string, expiresIn int, err error) {
	expiresIn = 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "sse",
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns the user ID
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, err error) {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "sse" {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

// SessionFromClaims builds the read-only session view this core consumes
// from verified token claims. Missing or malformed role data yields an
// empty role set: access fails closed.
func SessionFromClaims(claims map[string]interface{}) session.Session {
	s := session.Session{Roles: session.RoleSet{}}

	if v, ok := claims["user_id"].(string); ok {
		s.UserID = v
	}
	if v, ok := claims["company_id"].(string); ok {
		s.CompanyID = v
	}
	if v, ok := claims["employee_id"].(string); ok && v != "" {
		s.EmployeeID = &v
	}
	if v, ok := claims["login_method"].(string); ok {
		s.LoginMethod = session.LoginMethod(v)
	}
	if raw, ok := claims["roles"].([]interface{}); ok {
		tags := make([]string, 0, len(raw))
		for _, r := range raw {
			if tag, ok := r.(string); ok {
				tags = append(tags, tag)
			}
		}
		s.Roles = session.ParseRoleSet(tags)
	}

	return s
}
