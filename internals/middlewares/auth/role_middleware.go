package auth

import (
	"github.com/gofiber/fiber/v2"

	"annur_backend/internals/constants"
	helper "annur_backend/internals/helpers"
)

// IsCenterAdmin memastikan token punya role admin/owner DAN center aktif.
func IsCenterAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, constants.RoleAdmin) && !helper.HasRole(c, constants.RoleOwner) {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus admin center")
		}
		if _, err := helper.GetCenterIDFromToken(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// IsOwner: akses global lintas center (role owner saja).
func IsOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.HasRole(c, constants.RoleOwner) {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus owner")
		}
		return c.Next()
	}
}
