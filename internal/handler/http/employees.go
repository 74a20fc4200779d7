package http

import (
	"net/http"

	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/hcorbage/corb3d/internal/utils"
	"github.com/hcorbage/corb3d/models"
)

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	employees, err := h.services.EmployeeService.ListEmployees(r.Context(), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, employees, http.StatusOK)
}

// createEmployee returns the generated companion credential. It is shown once
// and never logged.
func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var employee models.Employee
	if err = h.decode(w, r, &employee, true); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.EmployeeService.CreateEmployee(r.Context(), p, employee)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("employee_id", created.Employee.ID).Msg("employee created")
	utils.WriteJSON(w, created, http.StatusOK)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.EmployeeUpdate
	if err = h.decode(w, r, &update, true); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.EmployeeService.UpdateEmployee(r.Context(), p, idParam(r), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	p, _, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.EmployeeService.DeleteEmployee(r.Context(), p, idParam(r)); err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w)
}
