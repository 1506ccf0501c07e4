package handler

import (
	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PromptHandler struct {
	uc usecase.PromptUsecase
}

func NewPromptHandler(uc usecase.PromptUsecase) *PromptHandler {
	return &PromptHandler{uc: uc}
}

func (h *PromptHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/prompts", h.ListPrompts)
}

func (h *PromptHandler) ListPrompts(c fiber.Ctx) error {
	items, err := h.uc.ListActive(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"prompts": dto.NewPromptResponses(items)})
}
