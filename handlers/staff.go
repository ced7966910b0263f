package handlers

import (
	"payroll_keeper/services"
	"payroll_keeper/types"
	"payroll_keeper/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AddStaffForm mirrors the index page form. Fields arrive as text and are
// validated into a typed request before anything touches the store.
type AddStaffForm struct {
	Name      string `form:"name" json:"name"`
	Role      string `form:"role" json:"role"`
	Basic     string `form:"basic" json:"basic"`
	Housing   string `form:"housing" json:"housing"`
	Transport string `form:"transport" json:"transport"`
	Feeding   string `form:"feeding" json:"feeding"`
}

// Index renders the payroll page: add-staff form, full payroll table sorted
// by net pay descending, and the summary figures.
func (h *Handler) Index(c *fiber.Ctx) error {
	return h.renderIndex(c, 200, "")
}

// AddStaff handles the index form submission. On success the new record is
// persisted and the client is redirected back to the payroll view. On a
// validation failure the page is re-rendered with the error and nothing is
// written.
func (h *Handler) AddStaff(c *fiber.Ctx) error {
	var form AddStaffForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderIndex(c, 400, "Invalid form submission")
	}

	req, err := types.NewAddStaffRequest(form.Name, form.Role, form.Basic, form.Housing, form.Transport, form.Feeding)
	if err != nil {
		return h.renderIndex(c, 400, err.Error())
	}

	record, err := h.Store.AddStaff(req)
	if err != nil {
		utils.Logger.Error("Failed to add staff", zap.Error(err))
		return h.renderIndex(c, 500, "Could not save the record, try again")
	}

	utils.Logger.Info("Staff added",
		zap.Uint("id", record.ID),
		zap.String("name", record.Name),
		zap.String("role", record.Role))

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *Handler) renderIndex(c *fiber.Ctx, status int, formError string) error {
	lines, err := h.Payroll.ComputePayroll()
	if err != nil {
		utils.Logger.Error("Failed to compute payroll", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "payroll unavailable")
	}

	return c.Status(status).Render("index", fiber.Map{
		"Title":     "Payroll System",
		"Lines":     lines,
		"Summary":   services.Summarize(lines),
		"FormError": formError,
	})
}

// GetStaff returns every raw staff record as JSON, in insertion order.
func (h *Handler) GetStaff(c *fiber.Ctx) error {
	records, err := h.Store.ListAll()
	if err != nil {
		utils.Logger.Error("Failed to list staff", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrStoreUnavailable.Error(),
		})
	}
	return c.JSON(types.APIResponse{
		Success: true,
		Data:    records,
	})
}

// PostStaff is the JSON mirror of AddStaff for API clients.
func (h *Handler) PostStaff(c *fiber.Ctx) error {
	var form AddStaffForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrInvalidInput.Error(),
		})
	}

	req, err := types.NewAddStaffRequest(form.Name, form.Role, form.Basic, form.Housing, form.Transport, form.Feeding)
	if err != nil {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	record, err := h.Store.AddStaff(req)
	if err != nil {
		utils.Logger.Error("Failed to add staff", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrStoreUnavailable.Error(),
		})
	}

	return c.Status(201).JSON(types.APIResponse{
		Success: true,
		Message: "Staff added",
		Data:    record,
	})
}
