package route

import (
	contactCtl "annur_backend/internals/features/contacts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/public/contacts
func ContactPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactCtl.NewContactController(db)
	r.Get("/contacts", ctrl.GetPublicContacts)
}
