package route

import (
	fatwaCtl "annur_backend/internals/features/fatwas/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/fatwas/...
func FatwaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := fatwaCtl.NewFatwaController(db)

	grp := r.Group("/fatwas")
	grp.Get("/", ctrl.GetAllFatwas)
	grp.Get("/stats", ctrl.GetFatwaStats)
	grp.Get("/:id", ctrl.GetFatwaByID)
	grp.Post("/", ctrl.CreateFatwa)
	grp.Put("/:id", ctrl.UpdateFatwa)
	grp.Delete("/:id", ctrl.DeleteFatwa)
}
