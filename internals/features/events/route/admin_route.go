package route

import (
	eventCtl "annur_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/events/...
func EventAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventCtl.NewEventController(db)

	grp := r.Group("/events")
	grp.Get("/", ctrl.GetAllEvents)
	grp.Get("/stats", ctrl.GetEventStats)
	grp.Get("/:id", ctrl.GetEventByID)
	grp.Post("/", ctrl.CreateEvent)
	grp.Put("/:id", ctrl.UpdateEvent)
	grp.Post("/:id/image", ctrl.UploadEventImage)
	grp.Delete("/:id", ctrl.DeleteEvent)
}
