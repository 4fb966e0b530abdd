package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/students/controller"
)

// Admin: kelola siswa & status pembayaran
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	admin.Post("/add-std", ctrl.Register)
	admin.Get("/std-list", ctrl.List)
	admin.Put("/update-payment/:uuid", ctrl.UpdatePayment)
}

// Siswa: profil sendiri
func StudentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	user.Get("/profile", ctrl.Profile)
}
