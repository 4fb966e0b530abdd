package database

import (
	"log"

	adminModel "lesku_backend/internals/features/admins/model"
	communityModel "lesku_backend/internals/features/community/model"
	financeModel "lesku_backend/internals/features/finance/model"
	paymentModel "lesku_backend/internals/features/finance/payment/model"
	studentModel "lesku_backend/internals/features/students/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel. Unique index di sini
// (phone, uuid, year, order_id) yang menjaga invariant, bukan cek aplikasi.
func Migrate() {
	err := DB.AutoMigrate(
		&studentModel.StudentModel{},
		&adminModel.AdminModel{},
		&financeModel.FeeSnapshotModel{},
		&paymentModel.FeePaymentModel{},
		&communityModel.ImagePostModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}
	log.Println("✅ Migrasi schema selesai.")
}
