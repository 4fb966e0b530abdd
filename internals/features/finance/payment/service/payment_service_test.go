package service

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paymentModel "lesku_backend/internals/features/finance/payment/model"
	studentModel "lesku_backend/internals/features/students/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&studentModel.StudentModel{}, &paymentModel.FeePaymentModel{}))
	return db
}

func setupServerKey(t *testing.T) {
	t.Helper()
	prev := serverKey
	serverKey = "test-server-key"
	t.Cleanup(func() { serverKey = prev })
}

// signNotif menghitung signature_key seperti yang dikirim Midtrans:
// SHA512(order_id + status_code + gross_amount + server key).
func signNotif(orderID, statusCode, grossAmount string) string {
	return sha512sum(orderID + statusCode + grossAmount + "test-server-key")
}

func seedPayment(t *testing.T, db *gorm.DB, orderID, studentUUID string) *paymentModel.FeePaymentModel {
	t.Helper()
	s := studentModel.StudentModel{
		StudentFullName: "Aarav Sharma",
		StudentPhone:    "9876543210",
		StudentUUID:     studentUUID,
		StudentClass:    "8",
	}
	require.NoError(t, db.Create(&s).Error)

	p := &paymentModel.FeePaymentModel{
		FeePaymentOrderID:     orderID,
		FeePaymentStudentUUID: studentUUID,
		FeePaymentAmount:      150000,
		FeePaymentStatus:      paymentModel.StatusPending,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2026, time.May, 8, 10, 0, 0, 0, time.UTC)
	id := NewOrderID("ab12cd34", now)

	assert.True(t, strings.HasPrefix(id, "FEE-ab12cd34-"))
	assert.NotEqual(t, id, NewOrderID("ab12cd34", now.Add(time.Millisecond)))
}

func TestWebhookSettlementMarksPaid(t *testing.T) {
	setupServerKey(t)
	db := newTestDB(t)
	seedPayment(t, db, "FEE-ab12cd34-1", "ab12cd34")

	err := HandlePaymentStatusWebhook(db, map[string]interface{}{
		"order_id":           "FEE-ab12cd34-1",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      signNotif("FEE-ab12cd34-1", "200", "150000.00"),
	})
	require.NoError(t, err)

	var p paymentModel.FeePaymentModel
	require.NoError(t, db.Where("fee_payment_order_id = ?", "FEE-ab12cd34-1").First(&p).Error)
	assert.Equal(t, paymentModel.StatusPaid, p.FeePaymentStatus)
	require.NotNil(t, p.FeePaymentPaidAt)

	// Siswa ikut ditandai lunas.
	var s studentModel.StudentModel
	require.NoError(t, db.Where("student_uuid = ?", "ab12cd34").First(&s).Error)
	assert.True(t, s.StudentIsPaid)
}

func TestWebhookRejectsForgedSignature(t *testing.T) {
	setupServerKey(t)
	db := newTestDB(t)
	seedPayment(t, db, "FEE-ab12cd34-1", "ab12cd34")

	// Siswa tahu order_id miliknya sendiri; tanpa server key dia tidak bisa
	// menghasilkan signature yang sah.
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "signature palsu",
			body: map[string]interface{}{
				"order_id":           "FEE-ab12cd34-1",
				"transaction_status": "settlement",
				"status_code":        "200",
				"gross_amount":       "150000.00",
				"signature_key":      "totally-forged",
			},
		},
		{
			name: "tanpa signature",
			body: map[string]interface{}{
				"order_id":           "FEE-ab12cd34-1",
				"transaction_status": "settlement",
				"status_code":        "200",
				"gross_amount":       "150000.00",
			},
		},
		{
			name: "signature sah tapi gross_amount diubah",
			body: map[string]interface{}{
				"order_id":           "FEE-ab12cd34-1",
				"transaction_status": "settlement",
				"status_code":        "200",
				"gross_amount":       "1.00",
				"signature_key":      signNotif("FEE-ab12cd34-1", "200", "150000.00"),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandlePaymentStatusWebhook(db, tt.body)
			assert.ErrorIs(t, err, ErrInvalidSignature)

			// Tidak ada state yang berubah.
			var p paymentModel.FeePaymentModel
			require.NoError(t, db.Where("fee_payment_order_id = ?", "FEE-ab12cd34-1").First(&p).Error)
			assert.Equal(t, paymentModel.StatusPending, p.FeePaymentStatus)

			var s studentModel.StudentModel
			require.NoError(t, db.Where("student_uuid = ?", "ab12cd34").First(&s).Error)
			assert.False(t, s.StudentIsPaid)
		})
	}
}

func TestWebhookRejectedWithoutServerKey(t *testing.T) {
	prev := serverKey
	serverKey = ""
	t.Cleanup(func() { serverKey = prev })

	db := newTestDB(t)
	seedPayment(t, db, "FEE-x-1", "ab12cd34")

	err := HandlePaymentStatusWebhook(db, map[string]interface{}{
		"order_id":           "FEE-x-1",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      sha512sum("FEE-x-1" + "200" + "150000.00" + ""),
	})
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestWebhookExpireAndCancel(t *testing.T) {
	setupServerKey(t)
	tests := []struct {
		name       string
		status     string
		wantStatus string
	}{
		{name: "expire", status: "expire", wantStatus: paymentModel.StatusExpired},
		{name: "cancel", status: "cancel", wantStatus: paymentModel.StatusCanceled},
		{name: "deny", status: "deny", wantStatus: paymentModel.StatusCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := newTestDB(t)
			seedPayment(t, db, "FEE-x-1", "ab12cd34")

			require.NoError(t, HandlePaymentStatusWebhook(db, map[string]interface{}{
				"order_id":           "FEE-x-1",
				"transaction_status": tt.status,
				"status_code":        "202",
				"gross_amount":       "150000.00",
				"signature_key":      signNotif("FEE-x-1", "202", "150000.00"),
			}))

			var p paymentModel.FeePaymentModel
			require.NoError(t, db.Where("fee_payment_order_id = ?", "FEE-x-1").First(&p).Error)
			assert.Equal(t, tt.wantStatus, p.FeePaymentStatus)
			assert.Nil(t, p.FeePaymentPaidAt)

			var s studentModel.StudentModel
			require.NoError(t, db.Where("student_uuid = ?", "ab12cd34").First(&s).Error)
			assert.False(t, s.StudentIsPaid, "status gagal tidak boleh menandai siswa lunas")
		})
	}
}

func TestWebhookUnknownStatusIgnored(t *testing.T) {
	setupServerKey(t)
	db := newTestDB(t)
	seedPayment(t, db, "FEE-x-1", "ab12cd34")

	require.NoError(t, HandlePaymentStatusWebhook(db, map[string]interface{}{
		"order_id":           "FEE-x-1",
		"transaction_status": "pending",
		"status_code":        "201",
		"gross_amount":       "150000.00",
		"signature_key":      signNotif("FEE-x-1", "201", "150000.00"),
	}))

	var p paymentModel.FeePaymentModel
	require.NoError(t, db.Where("fee_payment_order_id = ?", "FEE-x-1").First(&p).Error)
	assert.Equal(t, paymentModel.StatusPending, p.FeePaymentStatus)
}

func TestWebhookBadPayload(t *testing.T) {
	setupServerKey(t)
	db := newTestDB(t)

	assert.Error(t, HandlePaymentStatusWebhook(db, map[string]interface{}{
		"transaction_status": "settlement",
	}))
	assert.Error(t, HandlePaymentStatusWebhook(db, map[string]interface{}{
		"order_id": 123, // bukan string
	}))
	assert.Error(t, HandlePaymentStatusWebhook(db, map[string]interface{}{
		"order_id":           "FEE-tidak-ada",
		"transaction_status": "settlement",
		"status_code":        "200",
		"gross_amount":       "150000.00",
		"signature_key":      signNotif("FEE-tidak-ada", "200", "150000.00"),
	}))
}
