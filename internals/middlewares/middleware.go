package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "annur_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar: CORS, recovery, logger, global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
