package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;primaryKey;type:uuid" json:"student_id"`
	StudentFullName string    `gorm:"column:student_full_name;type:varchar(100);not null" json:"student_full_name"`
	StudentPhone    string    `gorm:"column:student_phone;type:varchar(20);not null;uniqueIndex" json:"student_phone"`
	// UUID pendek (8 char) — identifier publik sekaligus kredensial login siswa
	StudentUUID    string `gorm:"column:student_uuid;type:varchar(8);not null;uniqueIndex" json:"student_uuid"`
	StudentIsPaid  bool   `gorm:"column:student_is_paid;not null;default:false" json:"student_is_paid"`
	StudentClass   string `gorm:"column:student_class;type:varchar(20);not null" json:"student_class"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
