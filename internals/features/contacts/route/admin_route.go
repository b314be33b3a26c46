package route

import (
	contactCtl "annur_backend/internals/features/contacts/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/a/contacts/...
func ContactAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := contactCtl.NewContactController(db)

	grp := r.Group("/contacts")
	grp.Get("/", ctrl.GetAllContacts)
	grp.Get("/stats", ctrl.GetContactStats)
	grp.Get("/:id", ctrl.GetContactByID)
	grp.Post("/", ctrl.CreateContact)
	grp.Put("/:id", ctrl.UpdateContact)
	grp.Delete("/:id", ctrl.DeleteContact)
}
