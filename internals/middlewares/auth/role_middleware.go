// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
)

// OnlyRolesSlice membatasi akses ke role tertentu. Dipasang SETELAH
// AuthMiddleware (baca role dari Locals).
func OnlyRolesSlice(errMsg string, allowed []string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role tidak ditemukan di token")
		}
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, errMsg)
		}
		return c.Next()
	}
}

// GetStudentUUIDFromToken mengambil uuid siswa dari Locals (diisi middleware).
func GetStudentUUIDFromToken(c *fiber.Ctx) (string, error) {
	uuidStr, _ := c.Locals("uuid").(string)
	if uuidStr == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - UUID siswa tidak ada di token")
	}
	return uuidStr, nil
}
