// internals/seeds/admins/admin_seeder.go
package admins

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	adminModel "lesku_backend/internals/features/admins/model"
)

// SeedAdmins menanam akun admin dari ENV (ADMIN_NAME + ADMIN_CODE).
// Idempoten: kalau code sudah ada, tidak ada yang ditulis.
func SeedAdmins(db *gorm.DB) {
	name := configs.GetEnv("ADMIN_NAME")
	code := configs.GetEnv("ADMIN_CODE")
	if name == "" || code == "" {
		log.Println("⚠️ ADMIN_NAME/ADMIN_CODE belum diset — skip seeding admin")
		return
	}

	var existing adminModel.AdminModel
	err := db.Where("admin_code = ?", code).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Gagal cek admin seed: %v", err)
		return
	}

	admin := adminModel.AdminModel{
		AdminName:    name,
		AdminCode:    code,
		AdminIsAdmin: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] Gagal seed admin: %v", err)
		return
	}
	log.Printf("✅ Admin %q berhasil di-seed", name)
}
