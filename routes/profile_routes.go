package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/handlers"
	"github.com/skillswap-app/skillswap_api/middleware"
)

func ProfileRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	profile := api.Group("/profile/me", middleware.Protected())
	profile.Get("", handlers.GetProfile)
	profile.Put("", handlers.UpdateProfile)
	profile.Put("/skills", handlers.UpdateSkills)
	profile.Get("/availability", handlers.GetMyAvailability)
	profile.Post("/availability", handlers.SaveMyAvailability)
	profile.Patch("/availability/toggle", handlers.ToggleMyAvailabilitySlot)
}
