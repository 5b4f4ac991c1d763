// file: internals/features/posts/controller/post_controller.go
package controller

import (
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	dto "mediaku_backend/internals/features/posts/dto"
	service "mediaku_backend/internals/features/posts/service"
	helper "mediaku_backend/internals/helpers"
)

/* ==============================
   Controller
============================== */

type PostController struct {
	Service *service.PostService
}

func NewPostController(svc *service.PostService) *PostController {
	return &PostController{Service: svc}
}

// mapServiceError: SATU-SATUNYA tempat kind → HTTP status.
func mapServiceError(c *fiber.Ctx, err error) error {
	se, ok := service.AsServiceError(err)
	if !ok {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	switch se.Kind {
	case service.KindValidation, service.KindMediaRejected:
		return helper.JsonError(c, fiber.StatusBadRequest, se.Message)
	case service.KindNotFound:
		return helper.JsonError(c, fiber.StatusNotFound, se.Message)
	default: // KindProcessing, KindStore
		return helper.JsonError(c, fiber.StatusInternalServerError, se.Message)
	}
}

/* ==============================
   Handlers
============================== */

// POST /posts — Create (JSON untuk text, multipart untuk photo/video)
func (ctl *PostController) Create(c *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	// form boleh nil (request JSON tanpa file)
	var form *multipart.Form
	if f, err := c.MultipartForm(); err == nil {
		form = f
	}

	id, err := ctl.Service.Create(c.UserContext(), &req, form)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonCreated(c, "Post dibuat", fiber.Map{"id": id})
}

// GET /posts — List (paginated, terbaru dulu)
func (ctl *PostController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Service.List(c.UserContext(), paging.Page, paging.PerPage)
	if err != nil {
		return mapServiceError(c, err)
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "ok", dto.FromModelPosts(rows), pagination)
}

// GET /posts/:id
func (ctl *PostController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Param id kosong")
	}

	row, err := ctl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModelPost(row))
}

// PUT /posts/:id — hanya content & tags
func (ctl *PostController) Update(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Param id kosong")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := ctl.Service.Update(c.UserContext(), id, &req); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Post updated", fiber.Map{"id": id})
}

// DELETE /posts/:id
func (ctl *PostController) Delete(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Param id kosong")
	}

	if err := ctl.Service.Delete(c.UserContext(), id); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Post deleted", fiber.Map{"id": id})
}
