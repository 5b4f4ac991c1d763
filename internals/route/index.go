// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"

	postRoute "mediaku_backend/internals/features/posts/route"
	service "mediaku_backend/internals/features/posts/service"
)

func SetupRoutes(app *fiber.App, svc *service.PostService) {
	log.Println("[INFO] Setting up PostRoutes...")
	postRoute.PostRoutes(app, svc)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Backend server is running")
	})
}
