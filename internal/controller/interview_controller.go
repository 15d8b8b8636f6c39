package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"interview-prep-be/internal/dto"
	"interview-prep-be/internal/pkg/serverutils"
	"interview-prep-be/internal/service"
)

type IInterviewController interface {
	RegisterRoutes(r fiber.Router)
	StartSession(ctx *fiber.Ctx) error
	GetSession(ctx *fiber.Ctx) error
	NextQuestion(ctx *fiber.Ctx) error
	SubmitAnswer(ctx *fiber.Ctx) error
	SubmitLevelFeedback(ctx *fiber.Ctx) error
	AdvanceLevel(ctx *fiber.Ctx) error
}

type interviewController struct {
	service service.IInterviewService
}

func NewInterviewController(service service.IInterviewService) IInterviewController {
	return &interviewController{service: service}
}

func (c *interviewController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/interview/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("/sessions", c.StartSession)
	h.Get("/sessions/:id", c.GetSession)
	h.Post("/sessions/:id/questions", c.NextQuestion)
	h.Post("/sessions/:id/answers", c.SubmitAnswer)
	h.Post("/sessions/:id/feedback", c.SubmitLevelFeedback)
	h.Post("/sessions/:id/advance", c.AdvanceLevel)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func sessionIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, serverutils.NewAppError(fiber.StatusBadRequest, "invalid session id", err)
	}
	return id, nil
}

func (c *interviewController) StartSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.StartSession(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Session started", res))
}

func (c *interviewController) GetSession(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetSession(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session", res))
}

func (c *interviewController) NextQuestion(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.NextQuestion(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Question generated", res))
}

func (c *interviewController) SubmitAnswer(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.SubmitAnswer(ctx.Context(), userId, sessionId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

func (c *interviewController) SubmitLevelFeedback(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.SubmitLevelFeedback(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Level feedback ready", res))
}

func (c *interviewController) AdvanceLevel(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)
	sessionId, err := sessionIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.AdvanceLevel(ctx.Context(), userId, sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session advanced", res))
}
