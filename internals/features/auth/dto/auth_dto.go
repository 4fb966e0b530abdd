package dto

// 🔹 Login admin: shared-secret code, bukan username/password
type AdminLoginRequest struct {
	AdminName string `json:"admin_name" validate:"required,max=100"`
	AdminCode string `json:"admin_code" validate:"required,max=100"`
}

// 🔹 Login siswa: cukup uuid pendek yang dibagikan saat pendaftaran
type StudentLoginRequest struct {
	UUID string `json:"uuid" validate:"required,len=8"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
