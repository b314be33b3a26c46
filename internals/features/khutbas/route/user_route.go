package route

import (
	khutbaCtl "annur_backend/internals/features/khutbas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/khutbas
func KhutbaPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := khutbaCtl.NewKhutbaController(db)
	r.Get("/khutbas", ctrl.GetPublicKhutbas)
}
