package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeeEntry: potret status bayar satu siswa pada satu bulan.
type FeeEntry struct {
	Name   string `json:"name"`
	IsPaid bool   `json:"is_paid"`
	UUID   string `json:"uuid"`
}

// FeeSnapshotModel: satu baris per tahun, berisi map nama-bulan → daftar
// FeeEntry di kolom JSONB. Bulan yang di-arsip ulang ditimpa utuh, tidak
// di-merge.
type FeeSnapshotModel struct {
	FeeSnapshotID     uuid.UUID      `gorm:"column:fee_snapshot_id;primaryKey;type:uuid" json:"fee_snapshot_id"`
	FeeSnapshotYear   int            `gorm:"column:fee_snapshot_year;not null;uniqueIndex" json:"fee_snapshot_year"`
	FeeSnapshotMonths datatypes.JSON `gorm:"column:fee_snapshot_months" json:"fee_snapshot_months"`

	FeeSnapshotCreatedAt time.Time `gorm:"column:fee_snapshot_created_at;autoCreateTime" json:"fee_snapshot_created_at"`
	FeeSnapshotUpdatedAt time.Time `gorm:"column:fee_snapshot_updated_at;autoUpdateTime" json:"fee_snapshot_updated_at"`
}

func (FeeSnapshotModel) TableName() string {
	return "fee_snapshots"
}

func (m *FeeSnapshotModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeeSnapshotID == uuid.Nil {
		m.FeeSnapshotID = uuid.New()
	}
	return nil
}

// Months membongkar kolom JSONB menjadi map nama-bulan → entries.
func (m *FeeSnapshotModel) Months() (map[string][]FeeEntry, error) {
	months := make(map[string][]FeeEntry)
	if len(m.FeeSnapshotMonths) == 0 {
		return months, nil
	}
	if err := json.Unmarshal(m.FeeSnapshotMonths, &months); err != nil {
		return nil, err
	}
	return months, nil
}

// SetMonth menimpa daftar entry satu bulan (overwrite, bukan append).
func (m *FeeSnapshotModel) SetMonth(month string, entries []FeeEntry) error {
	months, err := m.Months()
	if err != nil {
		return err
	}
	months[month] = entries

	raw, err := json.Marshal(months)
	if err != nil {
		return err
	}
	m.FeeSnapshotMonths = datatypes.JSON(raw)
	return nil
}
