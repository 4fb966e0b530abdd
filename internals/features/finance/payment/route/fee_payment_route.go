package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/features/finance/payment/controller"
)

// Siswa: bayar SPP online
func PaymentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeePaymentController(db)
	user.Post("/pay-fee", ctrl.PayFee)
}

// Webhook Midtrans (tanpa login)
func PaymentWebhookRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFeePaymentController(db)
	api.Post("/payments/notification", ctrl.Notification)
}
