package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/auth/controller"
)

// Tidak perlu login
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)
	api.Post("/admin-login", ctrl.AdminLogin)
	api.Post("/std-login", ctrl.StudentLogin)
}
