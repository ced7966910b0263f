package store

import (
	"fmt"

	"payroll_keeper/models"
	"payroll_keeper/types"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StaffStore is the append-only registry of staff compensation records.
// It owns the SQLite handle for the life of the process.
type StaffStore struct {
	db *gorm.DB
}

// New opens (or creates) the SQLite database at path and ensures the staff
// table exists. Safe to call on every process start.
func New(path string) (*StaffStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", types.ErrStoreUnavailable, path, err)
	}
	if err := db.AutoMigrate(&models.StaffRecord{}); err != nil {
		return nil, fmt.Errorf("%w: migrate staff table: %v", types.ErrStoreUnavailable, err)
	}
	return &StaffStore{db: db}, nil
}

// NewWithDB wraps an already-open connection. Used by tests.
func NewWithDB(db *gorm.DB) (*StaffStore, error) {
	if err := db.AutoMigrate(&models.StaffRecord{}); err != nil {
		return nil, fmt.Errorf("%w: migrate staff table: %v", types.ErrStoreUnavailable, err)
	}
	return &StaffStore{db: db}, nil
}

// AddStaff appends one record built from an already-validated request and
// returns it with the store-assigned id and creation time filled in.
func (s *StaffStore) AddStaff(req types.AddStaffRequest) (models.StaffRecord, error) {
	record := models.StaffRecord{
		Name:      req.Name,
		Role:      req.Role,
		Basic:     req.Basic,
		Housing:   req.Housing,
		Transport: req.Transport,
		Feeding:   req.Feeding,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return models.StaffRecord{}, fmt.Errorf("%w: insert staff: %v", types.ErrStoreUnavailable, err)
	}
	return record, nil
}

// ListAll returns every staff record in insertion (id) order. The id ordering
// is what makes the payroll sort's equal-net tie-break deterministic.
func (s *StaffStore) ListAll() ([]models.StaffRecord, error) {
	var records []models.StaffRecord
	if err := s.db.Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: list staff: %v", types.ErrStoreUnavailable, err)
	}
	return records, nil
}

// Count reports the number of staff records.
func (s *StaffStore) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.StaffRecord{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("%w: count staff: %v", types.ErrStoreUnavailable, err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *StaffStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
