package controller

import (
	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAIInterviewController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Message(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type aiInterviewController struct {
	interviewService service.IAIInterviewService
}

func NewAIInterviewController(interviewService service.IAIInterviewService) IAIInterviewController {
	return &aiInterviewController{
		interviewService: interviewService,
	}
}

func (c *aiInterviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai-interview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("start", c.Start)
	h.Post("message", c.Message)
	h.Post("end", c.End)
	h.Get(":id", c.Show)
}

func (c *aiInterviewController) Start(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	var req dto.StartInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.interviewService.StartSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Interview started", res))
}

func (c *aiInterviewController) Message(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	var req dto.SendTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.interviewService.SendMessage(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *aiInterviewController) End(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	email, _ := ctx.Locals("email").(string)

	var req dto.EndInterviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.interviewService.EndSession(ctx.Context(), userId, email, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interview completed", res))
}

func (c *aiInterviewController) Show(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid session id")
	}

	res, err := c.interviewService.GetSession(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Interview session", res))
}

// callerID reads the trusted identity placed in Locals by the JWT middleware.
func callerID(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}
