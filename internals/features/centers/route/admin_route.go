package route

import (
	"annur_backend/internals/features/centers/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CenterAdminRoutes: profil center milik admin yang sedang login.
func CenterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCenterController(db)

	grp := r.Group("/centers")
	grp.Get("/me", ctrl.GetMyCenter)
	grp.Put("/me", ctrl.UpdateMyCenter)
	grp.Post("/me/logo", ctrl.UploadCenterLogo)
}

// CenterOwnerRoutes: pengelolaan center lintas tenant (owner saja).
func CenterOwnerRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCenterController(db)

	grp := r.Group("/centers")
	grp.Get("/", ctrl.GetAllCenters)
	grp.Post("/", ctrl.CreateCenter)
}
