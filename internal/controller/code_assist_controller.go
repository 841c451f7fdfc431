package controller

import (
	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICodeAssistController interface {
	RegisterRoutes(r fiber.Router)
	Review(ctx *fiber.Ctx) error
	Hint(ctx *fiber.Ctx) error
	Explain(ctx *fiber.Ctx) error
}

type codeAssistController struct {
	assistService service.ICodeAssistService
}

func NewCodeAssistController(assistService service.ICodeAssistService) ICodeAssistController {
	return &codeAssistController{
		assistService: assistService,
	}
}

func (c *codeAssistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("review", c.Review)
	h.Post("hint", c.Hint)
	h.Post("explain", c.Explain)
}

func (c *codeAssistController) Review(ctx *fiber.Ctx) error {
	var req dto.ReviewCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.assistService.ReviewCode(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Code review", res))
}

func (c *codeAssistController) Hint(ctx *fiber.Ctx) error {
	var req dto.HintRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.assistService.GetHint(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hint", res))
}

func (c *codeAssistController) Explain(ctx *fiber.Ctx) error {
	var req dto.ExplainCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.assistService.ExplainCode(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Code explanation", res))
}
