// internals/features/finance/service/fee_cycle_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	financeModel "lesku_backend/internals/features/finance/model"
	"lesku_backend/internals/features/finance/notifier"
	studentModel "lesku_backend/internals/features/students/model"
)

// Siklus bulanan dijalankan sebagai SATU pipeline terurut:
// snapshot → reset → notify. Urutan ini dulunya bergantung pada jam cron
// masing-masing job; sekarang eksplisit, dengan error tiap step diisolasi
// (step gagal dicatat, step berikutnya tetap jalan karena semuanya
// idempoten).

// SnapshotMonth mengarsip status bayar seluruh siswa ke baris tahun
// berjalan, menimpa utuh bulan berjalan (re-run di bulan yang sama
// membuang hasil sebelumnya).
func SnapshotMonth(db *gorm.DB, now time.Time) error {
	var students []studentModel.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return err
	}

	year := now.Year()
	month := now.Month().String() // "January" .. "December"

	var snapshot financeModel.FeeSnapshotModel
	err := db.Where("fee_snapshot_year = ?", year).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		snapshot = financeModel.FeeSnapshotModel{FeeSnapshotYear: year}
		if err := db.Create(&snapshot).Error; err != nil {
			// Race dengan run lain di tahun yang sama → ambil yang menang.
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			if err := db.Where("fee_snapshot_year = ?", year).First(&snapshot).Error; err != nil {
				return err
			}
		}
	} else if err != nil {
		return err
	}

	entries := make([]financeModel.FeeEntry, 0, len(students))
	for i := range students {
		entries = append(entries, financeModel.FeeEntry{
			Name:   students[i].StudentFullName,
			IsPaid: students[i].StudentIsPaid,
			UUID:   students[i].StudentUUID,
		})
	}
	if err := snapshot.SetMonth(month, entries); err != nil {
		return err
	}

	return db.Model(&snapshot).Update("fee_snapshot_months", snapshot.FeeSnapshotMonths).Error
}

// ResetPayments menandai semua siswa belum bayar. Satu bulk update
// (bukan loop per siswa) — hasil akhirnya sama dan idempoten.
func ResetPayments(db *gorm.DB) (int64, error) {
	res := db.Model(&studentModel.StudentModel{}).
		Where("student_is_paid = ?", true).
		Update("student_is_paid", false)
	return res.RowsAffected, res.Error
}

// NotifyUnpaid mengirim pengingat ke siswa yang belum bayar pada saat
// dipanggil. Kegagalan per penerima dicatat dan TIDAK menghentikan sisanya.
func NotifyUnpaid(db *gorm.DB, sender notifier.Sender, now time.Time) (sent, failed int, err error) {
	var unpaid []studentModel.StudentModel
	if err := db.Where("student_is_paid = ?", false).Find(&unpaid).Error; err != nil {
		return 0, 0, err
	}

	for i := range unpaid {
		msg := fmt.Sprintf(
			"Halo %s, tagihan les bulan %s %d belum dibayar. Mohon segera diselesaikan ya 🙏",
			unpaid[i].StudentFullName, now.Month().String(), now.Year(),
		)
		if sendErr := sender.Send(unpaid[i].StudentPhone, msg); sendErr != nil {
			failed++
			log.Printf("[NOTIFY ERROR] uuid=%s: %v", unpaid[i].StudentUUID, sendErr)
			continue
		}
		sent++
	}
	return sent, failed, nil
}

// RunFeeCycle menjalankan ketiga step berurutan. Snapshot HARUS duluan
// supaya arsip merekam status sebelum reset; notify setelah reset berarti
// semua siswa tersapu (perilaku sumber dipertahankan).
func RunFeeCycle(db *gorm.DB, sender notifier.Sender, now time.Time) {
	log.Printf("[FEE-CYCLE] mulai run %s %d", now.Month().String(), now.Year())

	if err := SnapshotMonth(db, now); err != nil {
		log.Printf("[FEE-CYCLE ERROR] snapshot: %v", err)
	}

	affected, err := ResetPayments(db)
	if err != nil {
		log.Printf("[FEE-CYCLE ERROR] reset: %v", err)
	} else {
		log.Printf("[FEE-CYCLE] reset %d siswa ke belum-bayar", affected)
	}

	sent, failed, err := NotifyUnpaid(db, sender, now)
	if err != nil {
		log.Printf("[FEE-CYCLE ERROR] notify: %v", err)
	} else {
		log.Printf("[FEE-CYCLE] notifikasi terkirim=%d gagal=%d", sent, failed)
	}
}
