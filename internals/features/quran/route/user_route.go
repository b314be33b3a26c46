package route

import (
	quranCtl "annur_backend/internals/features/quran/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/quran-contents
func QuranPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := quranCtl.NewQuranContentController(db)
	r.Get("/quran-contents", ctrl.GetPublicQuranContents)
}
