package http

import (
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/navigation"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
)

type NavigationHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
}

type navigationHandlerImpl struct {
	navService   navigation.Service
	enterprise   bool
	esignEnabled bool
}

func NewNavigationHandler(navService navigation.Service, enterprise bool, esignEnabled bool) NavigationHandler {
	return &navigationHandlerImpl{
		navService:   navService,
		enterprise:   enterprise,
		esignEnabled: esignEnabled,
	}
}

// Resolve returns the drawer routes visible to the authenticated session.
func (h *navigationHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	routes := h.navService.Resolve(navigation.ResolveInput{
		Roles:        sess.Roles,
		Enterprise:   h.enterprise,
		LoginMethod:  sess.LoginMethod,
		ESignEnabled: h.esignEnabled,
	})

	response.Success(w, routes)
}
