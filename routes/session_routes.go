package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/skillswap-app/skillswap_api/handlers"
	"github.com/skillswap-app/skillswap_api/middleware"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Post("/request", handlers.CreateSessionRequest)
	sessions.Get("/requests/sent/:userId", handlers.GetSentRequests)
	sessions.Get("/requests/received/:userId", handlers.GetReceivedRequests)
	sessions.Post("/requests/:requestId/accept", handlers.AcceptSessionRequest)
	sessions.Post("/requests/:requestId/decline", handlers.DeclineSessionRequest)
}
