package handlers

import (
	"fmt"

	"payroll_keeper/types"
	"payroll_keeper/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var exportHeaders = []string{
	"ID", "Name", "Role", "Basic", "Housing", "Transport", "Feeding",
	"Created At", "Gross", "Tax", "Pension", "Net",
}

// ExportPayroll writes the current payroll to an Excel workbook at the
// configured path and serves it as a download. Concurrent exports overwrite
// the same path, last writer wins. Exporting an empty staff set is a client
// error, not an empty file.
func (h *Handler) ExportPayroll(c *fiber.Ctx) error {
	lines, err := h.Payroll.ComputePayroll()
	if err != nil {
		utils.Logger.Error("Failed to compute payroll for export", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrStoreUnavailable.Error(),
		})
	}
	if len(lines) == 0 {
		return c.Status(400).JSON(types.APIResponse{
			Success: false,
			Error:   types.ErrEmptyExport.Error(),
		})
	}

	f := excelize.NewFile()
	sheetName := "Payroll"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		utils.Logger.Error("Failed to create export sheet", zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   "export failed",
		})
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, line := range lines {
		values := []interface{}{
			line.ID,
			line.Name,
			line.Role,
			line.Basic,
			line.Housing,
			line.Transport,
			line.Feeding,
			line.CreatedAt.Format("2006-01-02 15:04:05"),
			line.Gross,
			line.Tax,
			line.Pension,
			line.Net,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, v)
		}
	}

	if err := f.SaveAs(h.ExportPath); err != nil {
		utils.Logger.Error("Failed to write export file",
			zap.String("path", h.ExportPath),
			zap.Error(err))
		return c.Status(500).JSON(types.APIResponse{
			Success: false,
			Error:   fmt.Sprintf("could not write export file: %v", err),
		})
	}

	utils.Logger.Info("Payroll exported",
		zap.String("path", h.ExportPath),
		zap.Int("rows", len(lines)))

	return c.Download(h.ExportPath, "payroll_export.xlsx")
}
