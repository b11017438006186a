// SPDX-License-Identifier: MIT

package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AhmedFarag1/go-clean-code/internal/log"
	"github.com/AhmedFarag1/go-clean-code/internal/staff"
)

// maxBodySize bounds request bodies; employee records are tiny.
const maxBodySize = 64 << 10

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	var req staff.CreateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	employee, err := s.svc.Create(r.Context(), req)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		logger.Error().Err(err).Str(log.FieldEvent, "employee.create_failed").Msg("create employee")
		writeInternal(w)
		return
	}

	w.Header().Set("Location", "/api/employees/"+employee.ID)
	writeJSON(w, http.StatusCreated, employee)
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")

	employees, err := s.svc.List(r.Context())
	if err != nil {
		logger.Error().Err(err).Str(log.FieldEvent, "employee.list_failed").Msg("list employees")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"employees": employees,
		"count":     len(employees),
	})
}

func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	id := chi.URLParam(r, "id")

	employee, err := s.svc.Get(r.Context(), id)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		logger.Error().Err(err).Str(log.FieldEvent, "employee.get_failed").Str(log.FieldEmployeeID, id).Msg("get employee")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	id := chi.URLParam(r, "id")

	if err := s.svc.Delete(r.Context(), id); err != nil {
		if writeDomainError(w, err) {
			return
		}
		logger.Error().Err(err).Str(log.FieldEvent, "employee.delete_failed").Str(log.FieldEmployeeID, id).Msg("delete employee")
		writeInternal(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePayroll(w http.ResponseWriter, r *http.Request) {
	logger := log.WithComponentFromContext(r.Context(), "api")
	id := chi.URLParam(r, "id")

	payroll, err := s.svc.Payroll(r.Context(), id)
	if err != nil {
		if writeDomainError(w, err) {
			return
		}
		logger.Error().Err(err).Str(log.FieldEvent, "employee.payroll_failed").Str(log.FieldEmployeeID, id).Msg("compute payroll")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, payroll)
}
