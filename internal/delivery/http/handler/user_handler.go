package handler

import (
	"errors"

	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/domain/user"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"
	ucuser "career-advisor/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
)

type UserHandler struct {
	uc usecase.UserUsecase
}

func NewUserHandler(uc usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router, owner fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/", h.ListUsers)
	r.Get("/:user_id", owner, h.GetUser)
	r.Get("/:user_id/profile", owner, h.GetProfile)
}

func (h *UserHandler) ListUsers(c fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"users": dto.NewUserResponses(items)})
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	usr, err := h.uc.GetUser(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"user": dto.NewUserResponse(usr)})
}

func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	prof, err := h.uc.GetProfile(c.Context(), userID)
	if err != nil {
		return mapUserError(err)
	}
	if prof == nil {
		return response.Success(c, fiber.StatusOK, fiber.Map{"profile": nil, "message": "User profile not found"})
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"profile": dto.NewUserProfileResponse(*prof)})
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user_id", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
