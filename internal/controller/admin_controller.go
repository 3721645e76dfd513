package controller

import (
	"github.com/Lum1n0sity/scholarthynk-api/internal/pkg/serverutils"
	"github.com/Lum1n0sity/scholarthynk-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetLogs(ctx *fiber.Ctx) error
	GetLogDetail(ctx *fiber.Ctx) error
	GetAuditTrail(ctx *fiber.Ctx) error
}

type adminController struct {
	logService   service.ILogService
	auditService *service.AuditService
}

func NewAdminController(logService service.ILogService, auditService *service.AuditService) IAdminController {
	return &adminController{
		logService:   logService,
		auditService: auditService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("/logs", c.GetLogs)
	h.Get("/logs/:id", c.GetLogDetail)
	h.Get("/audit", c.GetAuditTrail)
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	level := ctx.Query("level")
	limit := ctx.QueryInt("limit", 100)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.logService.GetLogs(level, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("System logs", res))
}

func (c *adminController) GetLogDetail(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	res, err := c.logService.GetLogById(id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Log detail", res))
}

func (c *adminController) GetAuditTrail(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 100)

	res, err := c.auditService.GetRecent(ctx.Context(), limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Audit trail", res))
}
