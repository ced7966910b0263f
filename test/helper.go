package test

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"

	"payroll_keeper/config"
	"payroll_keeper/handlers"
	"payroll_keeper/services"
	"payroll_keeper/store"
	"payroll_keeper/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	// Find project root (where go.mod is located) so the views directory
	// resolves the same way it does for the server binary.
	projectRoot, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(projectRoot, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(projectRoot)
		if parent == projectRoot {
			log.Fatal("Could not find project root")
		}
		projectRoot = parent
	}
	os.Chdir(projectRoot)

	config.LoadConfig()
	utils.InitLogger()
}

// SetupTest builds a fresh app over a throwaway store. Each test gets its
// own database file and export path under t.TempDir.
func SetupTest(t *testing.T) (*fiber.App, *store.StaffStore) {
	staffStore := NewTestStore(t)
	return NewTestApp(staffStore, ExportPath(t)), staffStore
}

// NewTestStore opens a staff store on a per-test database file.
func NewTestStore(t *testing.T) *store.StaffStore {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "payroll.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("Failed to open test database:", err)
	}

	staffStore, err := store.NewWithDB(db)
	if err != nil {
		t.Fatal("Failed to init test store:", err)
	}
	t.Cleanup(func() { staffStore.Close() })

	return staffStore
}

// NewTestApp wires the full route table the way main does.
func NewTestApp(s *store.StaffStore, exportPath string) *fiber.App {
	payroll := services.NewPayrollService(s)
	h := handlers.New(s, payroll, exportPath)

	engine := html.New("./views", ".html")
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
	})

	app.Get("/", h.Index)
	app.Post("/staff", h.AddStaff)
	app.Get("/export", h.ExportPayroll)
	app.Get("/api/staff", h.GetStaff)
	app.Post("/api/staff", h.PostStaff)
	app.Get("/api/payroll", h.GetPayroll)

	return app
}

func ExportPath(t *testing.T) string {
	return filepath.Join(t.TempDir(), "payroll_export.xlsx")
}
