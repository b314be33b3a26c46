package route

import (
	"annur_backend/internals/features/centers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CenterPublicRoutes: profil center untuk halaman publik.
func CenterPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCenterController(db)

	r.Get("/centers/:slug", ctrl.GetCenterBySlug)
}
