package handler

import (
	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdviceHandler struct {
	uc usecase.AdviceUsecase
}

func NewAdviceHandler(uc usecase.AdviceUsecase) *AdviceHandler {
	return &AdviceHandler{uc: uc}
}

func (h *AdviceHandler) RegisterRoutes(r fiber.Router, owner fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/:user_id/advice", owner, h.GetAdvice)
}

func (h *AdviceHandler) GetAdvice(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.AdviceRequest
	if len(c.Body()) > 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}
	}

	res, err := h.uc.GetAdvice(c.Context(), userID, req.Question)
	if err != nil {
		return mapChatError(err)
	}
	return response.Outcome(c, fiber.StatusOK, res.Success, fiber.Map{"response": res.Response})
}
