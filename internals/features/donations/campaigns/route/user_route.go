package route

import (
	campaignCtl "annur_backend/internals/features/donations/campaigns/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/campaigns
func CampaignPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := campaignCtl.NewCampaignController(db)
	r.Get("/campaigns", ctrl.GetPublicCampaigns)
	r.Get("/campaigns/:id", ctrl.GetPublicCampaignByID)
}
