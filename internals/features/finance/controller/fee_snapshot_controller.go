// internals/features/finance/controller/fee_snapshot_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	financeDTO "lesku_backend/internals/features/finance/dto"
	financeModel "lesku_backend/internals/features/finance/model"
	"lesku_backend/internals/features/finance/notifier"
	financeService "lesku_backend/internals/features/finance/service"
	helper "lesku_backend/internals/helpers"
)

type FeeSnapshotController struct {
	DB     *gorm.DB
	Sender notifier.Sender
}

func NewFeeSnapshotController(db *gorm.DB) *FeeSnapshotController {
	return &FeeSnapshotController{DB: db, Sender: notifier.NewFromEnv()}
}

// ===================== GET BY YEAR =====================
// GET /api/a/fee-snapshots/:year
func (h *FeeSnapshotController) GetByYear(c *fiber.Ctx) error {
	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 2000 || year > 3000 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tahun tidak valid")
	}

	var snapshot financeModel.FeeSnapshotModel
	if err := h.DB.Where("fee_snapshot_year = ?", year).First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Belum ada arsip untuk tahun ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil arsip")
	}

	resp, err := financeDTO.FromModel(&snapshot)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Arsip korup")
	}
	return helper.JsonOK(c, "OK", resp)
}

// ===================== RUN CYCLE (manual) =====================
// POST /api/a/fee-cycle/run — rerun operasional; aman karena semua step
// idempoten.
func (h *FeeSnapshotController) RunCycle(c *fiber.Ctx) error {
	go financeService.RunFeeCycle(h.DB, h.Sender, time.Now())
	return helper.JsonOK(c, "Fee cycle dijalankan", nil)
}
