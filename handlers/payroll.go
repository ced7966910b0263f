package handlers

import (
	"payroll_keeper/models"
	"payroll_keeper/services"
	"payroll_keeper/types"
	"payroll_keeper/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PayrollResponse struct {
	Lines   []models.PayrollLine  `json:"lines"`
	Summary models.PayrollSummary `json:"summary"`
}

// GetPayroll returns the computed payroll and its summary as JSON. The
// payroll is derived fresh from the full staff table on every call.
func (h *Handler) GetPayroll(c *fiber.Ctx) error {
	lines, err := h.Payroll.ComputePayroll()
	if err != nil {
		utils.Logger.Error("Failed to compute payroll", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrStoreUnavailable.Error(),
		})
	}

	return c.JSON(types.APIResponse{
		Success: true,
		Data: PayrollResponse{
			Lines:   lines,
			Summary: services.Summarize(lines),
		},
	})
}
