package route

import (
	quranCtl "annur_backend/internals/features/quran/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/quran-contents/...
func QuranAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quranCtl.NewQuranContentController(db)

	grp := r.Group("/quran-contents")
	grp.Get("/", ctrl.GetAllQuranContents)
	grp.Get("/stats", ctrl.GetQuranContentStats)
	grp.Get("/:id", ctrl.GetQuranContentByID)
	grp.Post("/", ctrl.CreateQuranContent)
	grp.Put("/:id", ctrl.UpdateQuranContent)
	grp.Delete("/:id", ctrl.DeleteQuranContent)
}
