package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/portal-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/portal-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
	google      GoogleRedirector
	jwtService  jwt.Service
}

// GoogleRedirector is the slice of the OAuth collaborator the handler
// needs to start the federated flow.
type GoogleRedirector interface {
	GenerateState() string
	RedirectURL(state string) string
}

func NewAuthHandler(authService auth.AuthService, google GoogleRedirector, jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		authService: authService,
		google:      google,
		jwtService:  jwtService,
	}
}

const oauthStateCookie = "oauth_state"

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshExpiresAt))
	response.Success(w, resp)
}

// LoginWithGoogle implements AuthHandler. It redirects to the provider's
// consent screen with a state cookie for the callback to verify.
func (h *authHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.google.GenerateState()

	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.google.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *authHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		response.HandleError(w, auth.ErrOAuthStateMismatch)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	resp, err := h.authService.LoginWithGoogle(r.Context(), code)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshExpiresAt))
	response.Success(w, resp)
}

// Refresh implements AuthHandler. The refresh token is read from its
// HttpOnly cookie and rotated on every use.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	resp, err := h.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.jwtService.RevokeToken(cookie.Value)
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(resp.RefreshToken, resp.RefreshExpiresAt))
	response.Success(w, resp)
}

// Logout implements AuthHandler. Both tokens are revoked server-side and
// the refresh cookie is cleared.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		h.jwtService.RevokeToken(token)
	}
	if cookie, err := r.Cookie("refresh_token"); err == nil && cookie.Value != "" {
		h.jwtService.RevokeToken(cookie.Value)
	}
	http.SetCookie(w, h.jwtService.RefreshTokenCookie("", 0))
	response.SuccessWithMessage(w, "Logged out", nil)
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// sessionFromRequest builds the viewer session from the verified claims.
func sessionFromRequest(r *http.Request) (session.Session, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return session.Session{}, auth.ErrInvalidToken
	}
	return jwt.SessionFromClaims(claims), nil
}
