// internals/features/community/controller/image_post_controller.go
package controller

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lesku_backend/internals/configs"
	communityModel "lesku_backend/internals/features/community/model"
	helper "lesku_backend/internals/helpers"
)

const maxImagesPerPost = 10

type ImagePostController struct{ DB *gorm.DB }

func NewImagePostController(db *gorm.DB) *ImagePostController {
	return &ImagePostController{DB: db}
}

// ===================== UPLOAD =====================
// POST /api/a/upload — multipart: field "images" (maks 10) + desc/for_class
func (h *ImagePostController) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form multipart tidak valid")
	}

	files := form.File["images"]
	if len(files) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada file yang diupload")
	}
	if len(files) > maxImagesPerPost {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("Maksimal %d gambar per post", maxImagesPerPost))
	}

	uploadDir := configs.GetEnv("UPLOAD_DIR", "./uploads")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyiapkan folder upload")
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		dst := filepath.Join(uploadDir, uuid.NewString()+ext)
		if err := c.SaveFile(file, dst); err != nil {
			log.Printf("[ERROR] Gagal simpan file %q: %v", file.Filename, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
		}
		paths = append(paths, dst)
	}

	post := communityModel.ImagePostModel{
		ImagePostDesc:     strings.TrimSpace(c.FormValue("desc")),
		ImagePostForClass: strings.TrimSpace(c.FormValue("for_class")),
		ImagePostURLs:     paths,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan post")
	}

	return helper.JsonOK(c, "Upload berhasil", fiber.Map{"paths": paths})
}

// ===================== LIST =====================
// GET /api/u/community
func (h *ImagePostController) List(c *fiber.Ctx) error {
	var posts []communityModel.ImagePostModel
	if err := h.DB.Order("image_post_created_at DESC").Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil post")
	}
	return helper.JsonOK(c, "OK", posts)
}
