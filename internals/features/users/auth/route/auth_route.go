package route

import (
	"annur_backend/internals/configs"
	authCtl "annur_backend/internals/features/users/auth/controller"
	"annur_backend/internals/middlewares"
	authMw "annur_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

//   - /api/auth/...
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtl.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	grp.Post("/logout", ctrl.Logout)

	grp.Get("/me",
		authMw.AuthJWT(authMw.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		ctrl.Me)
}

//   - /api/a/users (dipasang di bawah middleware admin)
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtl.NewAuthController(db)
	r.Post("/users", ctrl.RegisterUser)
}
