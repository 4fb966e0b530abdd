// internals/features/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "lesku_backend/internals/features/auth/dto"
	authService "lesku_backend/internals/features/auth/service"
	helper "lesku_backend/internals/helpers"
)

type AuthController struct{ DB *gorm.DB }

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// ===================== ADMIN LOGIN =====================
// POST /api/admin-login
func (h *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req authDTO.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.AdminName = strings.TrimSpace(req.AdminName)
	req.AdminCode = strings.TrimSpace(req.AdminCode)
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := authService.IssueAdminToken(h.DB, req.AdminName, req.AdminCode)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Kode admin salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	return helper.JsonOK(c, "Login berhasil", authDTO.TokenResponse{Token: token})
}

// ===================== STUDENT LOGIN =====================
// POST /api/std-login
func (h *AuthController) StudentLogin(c *fiber.Ctx) error {
	var req authDTO.StudentLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	req.UUID = strings.TrimSpace(req.UUID)
	if err := validateAuth.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, err := authService.IssueStudentToken(h.DB, req.UUID)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusBadRequest, "UUID tidak dikenal")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
	}
	return helper.JsonOK(c, "Login berhasil", authDTO.TokenResponse{Token: token})
}
