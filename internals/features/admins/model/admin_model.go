package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminModel: akun admin dengan shared-secret code (di-seed, tidak ada
// endpoint pembuatan/ubah admin).
type AdminModel struct {
	AdminID      uuid.UUID `gorm:"column:admin_id;primaryKey;type:uuid" json:"admin_id"`
	AdminName    string    `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminCode    string    `gorm:"column:admin_code;type:varchar(100);not null;uniqueIndex" json:"-"`
	AdminIsAdmin bool      `gorm:"column:admin_is_admin;not null;default:true" json:"admin_is_admin"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
