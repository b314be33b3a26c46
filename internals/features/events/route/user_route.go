package route

import (
	eventCtl "annur_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/events
func EventPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := eventCtl.NewEventController(db)
	r.Get("/events", ctrl.GetPublicEvents)
	r.Get("/events/:slug", ctrl.GetPublicEventBySlug)
}
