package services

import (
	"sort"

	"payroll_keeper/models"
	"payroll_keeper/store"
)

const (
	TaxRate     = 0.10
	PensionRate = 0.08

	// NetThreshold is the net-pay cutoff for the "high earners" summary count.
	NetThreshold = 30000.0
)

// PayrollService derives payroll lines from the staff store. It holds no
// state of its own: every computation is a fresh full scan.
type PayrollService struct {
	Store *store.StaffStore
}

func NewPayrollService(s *store.StaffStore) *PayrollService {
	return &PayrollService{Store: s}
}

// ComputePayroll reads the full staff set and returns one PayrollLine per
// record, sorted by net pay descending. Records with equal net pay keep
// their insertion order. An empty store yields an empty slice, not an error.
func (p *PayrollService) ComputePayroll() ([]models.PayrollLine, error) {
	records, err := p.Store.ListAll()
	if err != nil {
		return nil, err
	}

	lines := make([]models.PayrollLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, Derive(r))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Net > lines[j].Net
	})

	return lines, nil
}

// Derive computes the pay figures for a single record. Tax and pension are
// flat rates on gross, no brackets, no rounding until display.
func Derive(r models.StaffRecord) models.PayrollLine {
	gross := r.Basic + r.Housing + r.Transport + r.Feeding
	tax := gross * TaxRate
	pension := gross * PensionRate
	return models.PayrollLine{
		StaffRecord: r,
		Gross:       gross,
		Tax:         tax,
		Pension:     pension,
		Net:         gross - tax - pension,
	}
}

// Summarize computes the display aggregates for a payroll: mean gross pay
// (0 when there are no lines) and the count of staff netting more than the
// threshold.
func Summarize(lines []models.PayrollLine) models.PayrollSummary {
	summary := models.PayrollSummary{StaffCount: len(lines)}
	if len(lines) == 0 {
		return summary
	}

	var totalGross float64
	for _, l := range lines {
		totalGross += l.Gross
		if l.Net > NetThreshold {
			summary.AboveThreshold++
		}
	}
	summary.AverageGross = totalGross / float64(len(lines))
	return summary
}
