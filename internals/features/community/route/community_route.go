package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/community/controller"
)

// Admin: upload pengumuman bergambar
func CommunityAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewImagePostController(db)
	admin.Post("/upload", ctrl.Upload)
}

// Semua yang login: lihat feed
func CommunityUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewImagePostController(db)
	user.Get("/community", ctrl.List)
}
