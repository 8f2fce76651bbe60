package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/handlers"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/skills", handlers.GetSkills)
	api.Get("/time-slots", handlers.GetTimeSlots)
}
