package route

import (
	khutbaCtl "annur_backend/internals/features/khutbas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/khutbas/...
func KhutbaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := khutbaCtl.NewKhutbaController(db)

	grp := r.Group("/khutbas")
	grp.Get("/", ctrl.GetAllKhutbas)
	grp.Get("/stats", ctrl.GetKhutbaStats)
	grp.Get("/:id", ctrl.GetKhutbaByID)
	grp.Post("/", ctrl.CreateKhutba)
	grp.Put("/:id", ctrl.UpdateKhutba)
	grp.Delete("/:id", ctrl.DeleteKhutba)
}
