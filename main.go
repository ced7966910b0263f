package main

import (
	"fmt"
	"log"

	"payroll_keeper/config"
	"payroll_keeper/handlers"
	"payroll_keeper/services"
	"payroll_keeper/store"
	"payroll_keeper/utils"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	config.LoadConfig()
	utils.InitLogger()
	defer utils.Logger.Sync()

	staffStore, err := store.New(config.AppConfig.DBPath)
	if err != nil {
		log.Fatal("Failed to open staff store:", err)
	}
	defer staffStore.Close()

	payroll := services.NewPayrollService(staffStore)
	h := handlers.New(staffStore, payroll, config.AppConfig.ExportPath)

	engine := html.New("./views", ".html")
	engine.AddFunc("money", func(v float64) string {
		return fmt.Sprintf("%.2f", v)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(fiberlogger.New())

	app.Get("/", h.Index)
	app.Post("/staff", h.AddStaff)
	app.Get("/export", h.ExportPayroll)

	app.Get("/api/staff", h.GetStaff)
	app.Post("/api/staff", h.PostStaff)
	app.Get("/api/payroll", h.GetPayroll)

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
