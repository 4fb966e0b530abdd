// internals/features/finance/payment/controller/fee_payment_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	paymentDTO "lesku_backend/internals/features/finance/payment/dto"
	paymentService "lesku_backend/internals/features/finance/payment/service"
	studentService "lesku_backend/internals/features/students/service"
	helper "lesku_backend/internals/helpers"
	authMiddleware "lesku_backend/internals/middlewares/auth"
)

type FeePaymentController struct{ DB *gorm.DB }

func NewFeePaymentController(db *gorm.DB) *FeePaymentController {
	return &FeePaymentController{DB: db}
}

var validatePayment = validator.New()

// ===================== PAY FEE =====================
// POST /api/u/pay-fee (siswa)
func (h *FeePaymentController) PayFee(c *fiber.Ctx) error {
	shortUUID, err := authMiddleware.GetStudentUUIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	student, svcErr := studentService.GetStudentByUUID(h.DB, shortUUID)
	if svcErr != nil {
		if errors.Is(svcErr, studentService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data siswa")
	}

	var req paymentDTO.PayFeeRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validatePayment.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	amount := req.Amount
	if amount <= 0 {
		defAmount, _ := strconv.ParseInt(configs.GetEnv("FEE_AMOUNT", "150000"), 10, 64)
		amount = defAmount
	}

	payment, snapToken, payErr := paymentService.CreateFeePayment(h.DB, student, amount)
	if payErr != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Gagal membuat transaksi pembayaran")
	}

	return helper.JsonCreated(c, "Transaksi dibuat", paymentDTO.PayFeeResponse{
		OrderID:   payment.FeePaymentOrderID,
		SnapToken: snapToken,
		Amount:    payment.FeePaymentAmount,
	})
}

// ===================== WEBHOOK =====================
// POST /api/payments/notification (publik — di-skip auth middleware)
func (h *FeePaymentController) Notification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := paymentService.HandlePaymentStatusWebhook(h.DB, body); err != nil {
		if errors.Is(err, paymentService.ErrInvalidSignature) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Signature tidak valid")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "OK", nil)
}
