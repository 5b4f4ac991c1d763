// file: internals/features/posts/route/post_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	controller "mediaku_backend/internals/features/posts/controller"
	service "mediaku_backend/internals/features/posts/service"
)

func PostRoutes(app *fiber.App, svc *service.PostService) {
	ctl := controller.NewPostController(svc)

	posts := app.Group("/posts")
	posts.Post("/", ctl.Create)
	posts.Get("/", ctl.List)
	posts.Get("/:id", ctl.GetByID)
	posts.Put("/:id", ctl.Update)
	posts.Delete("/:id", ctl.Delete)
}
