package constants

import "fmt"

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStudentsCanAccess = "❌ Hanya siswa yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

var (
	AllRoles    = []string{RoleAdmin, RoleStudent}
	AdminOnly   = []string{RoleAdmin}
	StudentOnly = []string{RoleStudent}
)
