// internals/features/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentDTO "lesku_backend/internals/features/students/dto"
	studentService "lesku_backend/internals/features/students/service"
	helper "lesku_backend/internals/helpers"
	authMiddleware "lesku_backend/internals/middlewares/auth"
)

type StudentController struct{ DB *gorm.DB }

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validateStudent = validator.New()

// ===================== REGISTER =====================
// POST /api/a/add-std
func (h *StudentController) Register(c *fiber.Ctx) error {
	var req studentDTO.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.StdClass = strings.TrimSpace(req.StdClass)

	if err := validateStudent.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := studentService.RegisterStudent(h.DB, &req)
	if err != nil {
		if errors.Is(err, studentService.ErrDuplicateStudent) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Siswa dengan nomor HP ini sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan siswa")
	}

	return helper.JsonOK(c, "Siswa berhasil didaftarkan", studentDTO.FromModel(student))
}

// ===================== LIST =====================
// GET /api/a/std-list
func (h *StudentController) List(c *fiber.Ctx) error {
	students, err := studentService.ListStudents(h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar siswa")
	}
	return helper.JsonOK(c, "OK", studentDTO.FromModels(students))
}

// ===================== PROFILE =====================
// GET /api/u/profile (uuid dari token)
func (h *StudentController) Profile(c *fiber.Ctx) error {
	shortUUID, err := authMiddleware.GetStudentUUIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	student, svcErr := studentService.GetStudentByUUID(h.DB, shortUUID)
	if svcErr != nil {
		if errors.Is(svcErr, studentService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "OK", studentDTO.FromModel(student))
}

// ===================== UPDATE PAYMENT =====================
// PUT /api/a/update-payment/:uuid
func (h *StudentController) UpdatePayment(c *fiber.Ctx) error {
	shortUUID := strings.TrimSpace(c.Params("uuid"))
	if shortUUID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "UUID wajib diisi")
	}

	var req studentDTO.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validateStudent.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	student, err := studentService.SetPaid(h.DB, shortUUID, *req.IsPaid)
	if err != nil {
		if errors.Is(err, studentService.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update status pembayaran")
	}
	return helper.JsonOK(c, "Status pembayaran berhasil diupdate", studentDTO.FromModel(student))
}
