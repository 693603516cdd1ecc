package http

import (
	"net/http"

	"github.com/cmlabs-hris/portal-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/portal-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeHandler(employeeRepo employee.EmployeeRepository) EmployeeHandler {
	return &employeeHandlerImpl{employeeRepo: employeeRepo}
}

// GetEmployee returns the saved record without opening an edit session.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	rec, err := h.employeeRepo.GetRecord(r.Context(), employeeID, sess.CompanyID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(rec))
}
