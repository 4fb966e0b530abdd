// internals/features/students/service/student_service.go
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/features/students/dto"
	"lesku_backend/internals/features/students/model"
)

var (
	ErrDuplicateStudent = errors.New("student already exists")
	ErrStudentNotFound  = errors.New("student not found")
)

// NewShortUUID menghasilkan identifier publik 8 karakter (segmen pertama
// dari UUID v4), sama seperti yang dipakai frontend untuk login siswa.
func NewShortUUID() string {
	return strings.Split(uuid.NewString(), "-")[0]
}

// RegisterStudent membuat siswa baru. Duplikat nomor HP ditolak lewat cek
// aplikasi DAN unique index di DB (cek aplikasi saja bisa kecolongan race).
func RegisterStudent(db *gorm.DB, req *dto.RegisterStudentRequest) (*model.StudentModel, error) {
	var existing model.StudentModel
	err := db.Where("student_phone = ?", req.Phone).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateStudent
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Tabrakan short-uuid sangat jarang; unique index yang jadi wasit,
	// kita tinggal coba ulang beberapa kali.
	for attempt := 0; attempt < 5; attempt++ {
		student := req.ToModel(NewShortUUID())
		err = db.Create(student).Error
		if err == nil {
			return student, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Bisa duplikat phone (race) atau duplikat uuid.
			var byPhone model.StudentModel
			if dbErr := db.Where("student_phone = ?", req.Phone).First(&byPhone).Error; dbErr == nil {
				return nil, ErrDuplicateStudent
			}
			continue
		}
		return nil, err
	}
	return nil, err
}

// ListStudents: full scan tanpa pagination (daftar kecil, dipakai admin).
func ListStudents(db *gorm.DB) ([]model.StudentModel, error) {
	var students []model.StudentModel
	if err := db.Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func GetStudentByUUID(db *gorm.DB, shortUUID string) (*model.StudentModel, error) {
	var student model.StudentModel
	if err := db.Where("student_uuid = ?", shortUUID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// SetPaid: point update idempoten, last-writer-wins (tanpa audit trail —
// riwayat bulanan direkam oleh snapshot arsip).
func SetPaid(db *gorm.DB, shortUUID string, isPaid bool) (*model.StudentModel, error) {
	student, err := GetStudentByUUID(db, shortUUID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(student).Update("student_is_paid", isPaid).Error; err != nil {
		return nil, err
	}
	student.StudentIsPaid = isPaid
	return student, nil
}
