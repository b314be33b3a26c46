package route

import (
	donationCtl "annur_backend/internals/features/donations/donations/controller"
	"annur_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/payments/...
func PaymentPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := donationCtl.NewDonationController(db)

	grp := r.Group("/payments", middlewares.PaymentRateLimiter())
	grp.Post("/create-order", ctrl.CreateOrder)
	grp.Post("/verify", ctrl.VerifyPayment)
	grp.Post("/webhook", ctrl.MidtransWebhook)
}
