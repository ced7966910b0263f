package models

import (
	"time"
)

// StaffRecord is one employee's compensation inputs. Rows are append-only:
// no update or delete path exists, a mistake is corrected by adding a new
// record.
type StaffRecord struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null" json:"role"`
	Basic     float64   `gorm:"not null" json:"basic"`
	Housing   float64   `gorm:"not null" json:"housing"`
	Transport float64   `gorm:"not null" json:"transport"`
	Feeding   float64   `gorm:"not null" json:"feeding"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (StaffRecord) TableName() string {
	return "staff"
}

// PayrollLine is a StaffRecord plus its derived pay figures. Never persisted;
// every read recomputes it from the full staff table.
type PayrollLine struct {
	StaffRecord
	Gross   float64 `json:"gross"`
	Tax     float64 `json:"tax"`
	Pension float64 `json:"pension"`
	Net     float64 `json:"net"`
}

// PayrollSummary aggregates a computed payroll for display.
type PayrollSummary struct {
	StaffCount     int     `json:"staff_count"`
	AverageGross   float64 `json:"average_gross"`
	AboveThreshold int     `json:"above_threshold"`
}
