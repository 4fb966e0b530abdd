// internals/features/finance/payment/service/payment_service.go
package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	paymentModel "lesku_backend/internals/features/finance/payment/model"
	studentModel "lesku_backend/internals/features/students/model"
)

var ErrInvalidSignature = errors.New("invalid signature")

var (
	SnapClient snap.Client
	serverKey  string
)

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
// Key juga dipakai untuk verifikasi signature_key webhook.
func InitMidtrans(key string) {
	serverKey = key
	env := midtrans.Sandbox
	if b, err := strconv.ParseBool(configs.GetEnv("MIDTRANS_USE_PROD", "false")); err == nil && b {
		env = midtrans.Production
	}
	SnapClient.New(key, env)
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

// verifySignature — SHA512(order_id + status_code + gross_amount + ServerKey),
// sesuai skema notifikasi Midtrans. Tanpa server key semua webhook ditolak.
func verifySignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	if serverKey == "" || signatureKey == "" {
		return false
	}
	raw := orderID + statusCode + grossAmount + serverKey
	return sha512sum(raw) == strings.ToLower(signatureKey)
}

// NewOrderID: order id unik per transaksi SPP.
func NewOrderID(studentUUID string, now time.Time) string {
	return fmt.Sprintf("FEE-%s-%d", studentUUID, now.UnixMilli())
}

// CreateFeePayment mencatat transaksi pending + minta token Snap.
func CreateFeePayment(db *gorm.DB, student *studentModel.StudentModel, amount int64) (*paymentModel.FeePaymentModel, string, error) {
	payment := &paymentModel.FeePaymentModel{
		FeePaymentOrderID:     NewOrderID(student.StudentUUID, time.Now()),
		FeePaymentStudentUUID: student.StudentUUID,
		FeePaymentAmount:      amount,
		FeePaymentStatus:      paymentModel.StatusPending,
	}
	if err := db.Create(payment).Error; err != nil {
		return nil, "", err
	}

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  payment.FeePaymentOrderID,
			GrossAmt: payment.FeePaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: student.StudentFullName,
			Phone: student.StudentPhone,
		},
	}
	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return nil, "", err
	}
	return payment, resp.Token, nil
}

// HandlePaymentStatusWebhook dipanggil saat menerima notifikasi dari
// Midtrans: settlement/capture menandai transaksi paid DAN siswa is_paid.
// Signature WAJIB valid sebelum ada state yang disentuh — endpoint ini
// publik dan order_id diketahui siswa.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)
	if !verifySignature(orderID, statusCode, grossAmount, signatureKey) {
		log.Printf("[ERROR] Signature webhook tidak valid, order_id=%s", orderID)
		return ErrInvalidSignature
	}

	var payment paymentModel.FeePaymentModel
	if err := db.Where("fee_payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[ERROR] Transaksi tidak ditemukan:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.FeePaymentStatus = paymentModel.StatusPaid
		payment.FeePaymentPaidAt = &now

		if err := db.Model(&studentModel.StudentModel{}).
			Where("student_uuid = ?", payment.FeePaymentStudentUUID).
			Update("student_is_paid", true).Error; err != nil {
			log.Printf("[ERROR] Gagal tandai siswa %s lunas: %v", payment.FeePaymentStudentUUID, err)
		}
	case "expire":
		payment.FeePaymentStatus = paymentModel.StatusExpired
	case "cancel", "deny":
		payment.FeePaymentStatus = paymentModel.StatusCanceled
	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}

	return db.Save(&payment).Error
}
