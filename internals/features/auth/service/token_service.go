// internals/features/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	"lesku_backend/internals/constants"
	adminModel "lesku_backend/internals/features/admins/model"
	studentService "lesku_backend/internals/features/students/service"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// nowFunc bisa dioverride di test untuk bikin token kadaluarsa.
var nowFunc = time.Now

// IssueAdminToken: lookup admin by code, lalu terbitkan bearer token
// berumur panjang (default 90 hari).
func IssueAdminToken(db *gorm.DB, adminName, adminCode string) (string, error) {
	var admin adminModel.AdminModel
	err := db.Where("admin_code = ?", adminCode).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	now := nowFunc()
	claims := jwt.MapClaims{
		"role":       constants.RoleAdmin,
		"admin_name": admin.AdminName,
		"admin_code": admin.AdminCode,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenTTL()).Unix(),
	}
	return sign(claims)
}

// IssueStudentToken: uuid pendek siswa adalah kredensial loginnya.
func IssueStudentToken(db *gorm.DB, shortUUID string) (string, error) {
	student, err := studentService.GetStudentByUUID(db, shortUUID)
	if err != nil {
		if errors.Is(err, studentService.ErrStudentNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	now := nowFunc()
	claims := jwt.MapClaims{
		"role":      constants.RoleStudent,
		"uuid":      student.StudentUUID,
		"full_name": student.StudentFullName,
		"class":     student.StudentClass,
		"iat":       now.Unix(),
		"exp":       now.Add(tokenTTL()).Unix(),
	}
	return sign(claims)
}

// VerifyToken: verifikasi penuh signature + exp. Klaim TIDAK dicek ulang ke
// DB — token siswa yang recordnya hilang tetap valid sampai exp (limitasi
// yang disengaja, tanpa revocation list).
func VerifyToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func sign(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

func tokenTTL() time.Duration {
	days := configs.JWTExpiryDays
	if days <= 0 {
		days = 90
	}
	return time.Duration(days) * 24 * time.Hour
}
