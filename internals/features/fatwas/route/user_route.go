package route

import (
	fatwaCtl "annur_backend/internals/features/fatwas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/fatwas
func FatwaPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := fatwaCtl.NewFatwaController(db)
	r.Get("/fatwas", ctrl.GetPublicFatwas)
}
