package controller

import (
	"github.com/Lum1n0sity/scholarthynk-api/internal/dto"
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/serverutils"
	"github.com/Lum1n0sity/scholarthynk-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFileViewerController interface {
	RegisterRoutes(r fiber.Router)
	GetItems(ctx *fiber.Ctx) error
	CreateFolder(ctx *fiber.Ctx) error
	CreateNote(ctx *fiber.Ctx) error
	RenameItem(ctx *fiber.Ctx) error
	DeleteItem(ctx *fiber.Ctx) error
	UpdateNote(ctx *fiber.Ctx) error
}

type fileViewerController struct {
	service service.IFileViewerService
}

func NewFileViewerController(service service.IFileViewerService) IFileViewerController {
	return &fileViewerController{service: service}
}

func (c *fileViewerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/fileviewer/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/items", c.GetItems)
	h.Post("/folder", c.CreateFolder)
	h.Post("/note", c.CreateNote)
	h.Patch("/item", c.RenameItem)
	h.Delete("/item", c.DeleteItem)
	h.Patch("/note", c.UpdateNote)
}

func (c *fileViewerController) GetItems(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.GetItemsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetItems(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get items", res))
}

func (c *fileViewerController) CreateFolder(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateFolderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.CreateFolder(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success create folder", nil))
}

func (c *fileViewerController) CreateNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.CreateNote(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success create note", nil))
}

func (c *fileViewerController) RenameItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.RenameItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.RenameItem(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success rename item", nil))
}

func (c *fileViewerController) DeleteItem(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.DeleteItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.DeleteItem(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete item", nil))
}

func (c *fileViewerController) UpdateNote(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateNote(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update note", nil))
}
