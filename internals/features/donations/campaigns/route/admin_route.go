package route

import (
	campaignCtl "annur_backend/internals/features/donations/campaigns/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/campaigns/...
func CampaignAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := campaignCtl.NewCampaignController(db)

	grp := r.Group("/campaigns")
	grp.Get("/", ctrl.GetAllCampaigns)
	grp.Get("/stats", ctrl.GetCampaignStats)
	grp.Get("/:id", ctrl.GetCampaignByID)
	grp.Post("/", ctrl.CreateCampaign)
	grp.Put("/:id", ctrl.UpdateCampaign)
	grp.Post("/:id/image", ctrl.UploadCampaignImage)
	grp.Delete("/:id", ctrl.DeleteCampaign)
}
