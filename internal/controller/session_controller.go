package controller

import (
	"ai-interview-be/internal/apperror"
	"ai-interview-be/internal/dto"
	"ai-interview-be/internal/pkg/serverutils"
	"ai-interview-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListActive(ctx *fiber.Ctx) error
	ListMyRecent(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Join(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("active", c.ListActive)
	h.Get("my-recent", c.ListMyRecent)
	h.Get(":id", c.Show)
	h.Post(":id/join", c.Join)
	h.Post(":id/end", c.End)
	h.Patch(":id", c.Update)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return apperror.Validation(err.Error())
	}

	res, err := c.sessionService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) ListActive(ctx *fiber.Ctx) error {
	res, err := c.sessionService.ListActive(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Active sessions", dto.SessionListResponse{Sessions: res}))
}

func (c *sessionController) ListMyRecent(ctx *fiber.Ctx) error {
	userId := callerID(ctx)

	res, err := c.sessionService.ListMyRecent(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recent sessions", dto.SessionListResponse{Sessions: res}))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid session id")
	}

	res, err := c.sessionService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session", res))
}

func (c *sessionController) Join(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid session id")
	}

	res, err := c.sessionService.Join(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Joined session", res))
}

func (c *sessionController) End(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid session id")
	}

	res, err := c.sessionService.End(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session ended", res))
}

func (c *sessionController) Update(ctx *fiber.Ctx) error {
	userId := callerID(ctx)
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.Validation("Invalid session id")
	}

	var req dto.UpdateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.Validation("Invalid request body")
	}

	res, err := c.sessionService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session updated", res))
}
