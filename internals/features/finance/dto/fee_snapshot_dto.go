package dto

import (
	"lesku_backend/internals/features/finance/model"
)

type FeeSnapshotResponse struct {
	Year   int                         `json:"year"`
	Months map[string][]model.FeeEntry `json:"months"`
}

func FromModel(m *model.FeeSnapshotModel) (*FeeSnapshotResponse, error) {
	months, err := m.Months()
	if err != nil {
		return nil, err
	}
	return &FeeSnapshotResponse{
		Year:   m.FeeSnapshotYear,
		Months: months,
	}, nil
}
