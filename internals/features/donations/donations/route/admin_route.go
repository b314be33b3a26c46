package route

import (
	donationCtl "annur_backend/internals/features/donations/donations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/donations/...
func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := donationCtl.NewDonationController(db)

	grp := r.Group("/donations")
	grp.Get("/", ctrl.GetAllDonations)
	grp.Get("/stats", ctrl.GetDonationStats)
	grp.Get("/:id", ctrl.GetDonationByID)
}
