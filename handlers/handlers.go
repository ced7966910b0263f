package handlers

import (
	"payroll_keeper/services"
	"payroll_keeper/store"
)

// Handler carries the handler dependencies. Constructed once in main and
// shared by every route; there is no package-level database handle.
type Handler struct {
	Store      *store.StaffStore
	Payroll    *services.PayrollService
	ExportPath string
}

func New(s *store.StaffStore, p *services.PayrollService, exportPath string) *Handler {
	return &Handler{
		Store:      s,
		Payroll:    p,
		ExportPath: exportPath,
	}
}
