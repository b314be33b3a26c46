package route

import (
	notifCtl "annur_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/notifications
func NotificationPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtl.NewNotificationController(db)
	r.Get("/notifications", ctrl.GetPublicNotifications)
}
