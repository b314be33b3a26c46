package routes

import (
	"log"
	"time"

	"annur_backend/internals/configs"
	databases "annur_backend/internals/databases"
	authMiddleware "annur_backend/internals/middlewares/auth"

	campaignRoute "annur_backend/internals/features/donations/campaigns/route"
	paymentRoute "annur_backend/internals/features/donations/donations/route"

	centerRoute "annur_backend/internals/features/centers/route"
	contactRoute "annur_backend/internals/features/contacts/route"
	eventRoute "annur_backend/internals/features/events/route"
	fatwaRoute "annur_backend/internals/features/fatwas/route"
	gradeRoute "annur_backend/internals/features/grades/route"
	khutbaRoute "annur_backend/internals/features/khutbas/route"
	notificationRoute "annur_backend/internals/features/notifications/route"
	quranRoute "annur_backend/internals/features/quran/route"
	authRoute "annur_backend/internals/features/users/auth/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	app.Static("/uploads", "./uploads")

	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app.Group("/api"), db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ===================== ADMIN (per center) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsCenterAdmin(),
	)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group (Auth + owner global)...")
	owner := app.Group("/api/o",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
		authMiddleware.IsOwner(),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Center routes...")
	centerRoute.CenterPublicRoutes(public, db)
	centerRoute.CenterAdminRoutes(admin, db)
	centerRoute.CenterOwnerRoutes(owner, db)

	log.Println("[INFO] Mounting Fatwa routes...")
	fatwaRoute.FatwaPublicRoutes(public, db)
	fatwaRoute.FatwaAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Khutba routes...")
	khutbaRoute.KhutbaPublicRoutes(public, db)
	khutbaRoute.KhutbaAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Quran routes...")
	quranRoute.QuranPublicRoutes(public, db)
	quranRoute.QuranAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Event routes...")
	eventRoute.EventPublicRoutes(public, db)
	eventRoute.EventAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Contact routes...")
	contactRoute.ContactPublicRoutes(public, db)
	contactRoute.ContactAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoute.NotificationPublicRoutes(public, db)
	notificationRoute.NotificationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Grade routes...")
	gradeRoute.GradeAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Donation routes...")
	campaignRoute.CampaignPublicRoutes(public, db)
	campaignRoute.CampaignAdminRoutes(admin, db)
	paymentRoute.PaymentPublicRoutes(public, db)
	paymentRoute.DonationAdminRoutes(admin, db)

	log.Println("[INFO] Mounting User admin routes...")
	authRoute.UserAdminRoutes(admin, db)

	log.Println("[INFO] ✅ Semua route berhasil dimount")
}

func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Annur backend connected successfully 🚀")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := databases.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
		})
	})
}
