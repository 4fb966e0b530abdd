// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lesku_backend/internals/constants"
	authRoute "lesku_backend/internals/features/auth/route"
	communityRoute "lesku_backend/internals/features/community/route"
	paymentRoute "lesku_backend/internals/features/finance/payment/route"
	financeRoute "lesku_backend/internals/features/finance/route"
	studentRoute "lesku_backend/internals/features/students/route"
	authMiddleware "lesku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC routes...")
	api := app.Group("/api")
	authRoute.AuthRoutes(api, db)
	paymentRoute.PaymentWebhookRoutes(api, db)

	// ===================== USER (login, role apa pun) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			"❌ Hanya pengguna terautentikasi yang boleh mengakses fitur ini.",
			constants.AllRoles,
		),
	)
	studentRoute.StudentUserRoutes(user, db)
	communityRoute.CommunityUserRoutes(user, db)
	paymentRoute.PaymentUserRoutes(user, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("administrasi les"),
			constants.AdminOnly,
		),
	)
	studentRoute.StudentAdminRoutes(admin, db)
	financeRoute.FinanceAdminRoutes(admin, db)
	communityRoute.CommunityAdminRoutes(admin, db)
}
