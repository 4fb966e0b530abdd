package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusExpired  = "expired"
	StatusCanceled = "canceled"
)

// FeePaymentModel: transaksi pembayaran SPP online via Midtrans Snap.
type FeePaymentModel struct {
	FeePaymentID          uuid.UUID  `gorm:"column:fee_payment_id;primaryKey;type:uuid" json:"fee_payment_id"`
	FeePaymentOrderID     string     `gorm:"column:fee_payment_order_id;type:varchar(64);not null;uniqueIndex" json:"fee_payment_order_id"`
	FeePaymentStudentUUID string     `gorm:"column:fee_payment_student_uuid;type:varchar(8);not null;index" json:"fee_payment_student_uuid"`
	FeePaymentAmount      int64      `gorm:"column:fee_payment_amount;not null" json:"fee_payment_amount"`
	FeePaymentStatus      string     `gorm:"column:fee_payment_status;type:varchar(20);not null;default:'pending'" json:"fee_payment_status"`
	FeePaymentPaidAt      *time.Time `gorm:"column:fee_payment_paid_at" json:"fee_payment_paid_at,omitempty"`

	FeePaymentCreatedAt time.Time `gorm:"column:fee_payment_created_at;autoCreateTime" json:"fee_payment_created_at"`
	FeePaymentUpdatedAt time.Time `gorm:"column:fee_payment_updated_at;autoUpdateTime" json:"fee_payment_updated_at"`
}

func (FeePaymentModel) TableName() string {
	return "fee_payments"
}

func (m *FeePaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeePaymentID == uuid.Nil {
		m.FeePaymentID = uuid.New()
	}
	return nil
}
