package dto

import (
	"lesku_backend/internals/features/students/model"
)

/* =========================================================
   Request / Response
========================================================= */

// 🔹 Request pendaftaran siswa baru (oleh admin)
type RegisterStudentRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	StdClass string `json:"std_class" validate:"required,max=20"`
}

// 🔹 Request update status pembayaran
type UpdatePaymentRequest struct {
	IsPaid *bool `json:"is_paid" validate:"required"`
}

// 🔹 Response siswa (uuid dipakai frontend sebagai kredensial login)
type StudentResponse struct {
	UUID     string `json:"uuid"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	StdClass string `json:"std_class"`
	IsPaid   bool   `json:"is_paid"`
}

/* =========================================================
   Converter
========================================================= */

func (r *RegisterStudentRequest) ToModel(shortUUID string) *model.StudentModel {
	return &model.StudentModel{
		StudentFullName: r.FullName,
		StudentPhone:    r.Phone,
		StudentClass:    r.StdClass,
		StudentUUID:     shortUUID,
		StudentIsPaid:   false,
	}
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		UUID:     m.StudentUUID,
		FullName: m.StudentFullName,
		Phone:    m.StudentPhone,
		StdClass: m.StudentClass,
		IsPaid:   m.StudentIsPaid,
	}
}

func FromModels(ms []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
