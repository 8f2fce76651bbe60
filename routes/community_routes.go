package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/handlers"
	"github.com/skillswap-app/skillswap_api/middleware"
)

func CommunityRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/community", middleware.Protected(), handlers.GetCommunity)
}
