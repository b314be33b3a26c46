package route

import (
	notifCtl "annur_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/notifications/...
func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notifCtl.NewNotificationController(db)

	grp := r.Group("/notifications")
	grp.Get("/", ctrl.GetAllNotifications)
	grp.Get("/stats", ctrl.GetNotificationStats)
	grp.Get("/:id", ctrl.GetNotificationByID)
	grp.Post("/", ctrl.CreateNotification)
	grp.Put("/:id", ctrl.UpdateNotification)
	grp.Delete("/:id", ctrl.DeleteNotification)
}
