package controller

import (
	"site-chatbot-be/internal/pkg/serverutils"
	"site-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAnalyticsController interface {
	RegisterRoutes(r fiber.Router, apiKey string)
	GetLogs(ctx *fiber.Ctx) error
	GetSummary(ctx *fiber.Ctx) error
	GetLeads(ctx *fiber.Ctx) error
}

type analyticsController struct {
	service service.IAnalyticsService
}

func NewAnalyticsController(service service.IAnalyticsService) IAnalyticsController {
	return &analyticsController{service: service}
}

func (c *analyticsController) RegisterRoutes(r fiber.Router, apiKey string) {
	h := r.Group("/analytics")
	h.Use(serverutils.APIKeyMiddleware(apiKey))
	h.Get("/logs", c.GetLogs)
	h.Get("/summary", c.GetSummary)
	h.Get("/leads", c.GetLeads)
}

func (c *analyticsController) GetLogs(ctx *fiber.Ctx) error {
	page := ctx.QueryInt("page", 1)

	res, err := c.service.GetLogs(ctx.Context(), page)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat logs", res))
}

func (c *analyticsController) GetSummary(ctx *fiber.Ctx) error {
	res, err := c.service.GetSummary(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get analytics summary", res))
}

func (c *analyticsController) GetLeads(ctx *fiber.Ctx) error {
	res, err := c.service.GetLeads(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get leads", res))
}
