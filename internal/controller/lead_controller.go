package controller

import (
	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/pkg/serverutils"
	"site-chatbot-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	Save(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	r.Post("/leads", c.Save)
}

func (c *leadController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SaveLead(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save lead", res))
}
