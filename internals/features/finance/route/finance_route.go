package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/controller"
)

// Admin: arsip bulanan + rerun pipeline
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeeSnapshotController(db)
	admin.Get("/fee-snapshots/:year", ctrl.GetByYear)
	admin.Post("/fee-cycle/run", ctrl.RunCycle)
}
