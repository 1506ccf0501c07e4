package handler

import (
	"errors"
	"strings"

	"career-advisor/internal/delivery/http/dto"
	"career-advisor/internal/delivery/http/middleware"
	"career-advisor/internal/domain/conversation"
	"career-advisor/internal/domain/user"
	"career-advisor/internal/pkg/response"
	"career-advisor/internal/usecase"
	ucchat "career-advisor/internal/usecase/chat"

	"github.com/gofiber/fiber/v3"
)

type ConversationHandler struct {
	uc usecase.ChatUsecase
}

func NewConversationHandler(uc usecase.ChatUsecase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

func (h *ConversationHandler) RegisterRoutes(r fiber.Router, owner fiber.Handler) {
	if r == nil {
		return
	}

	r.Get("/:user_id/conversations", owner, h.ListConversations)
	r.Get("/:user_id/conversations/:conversation_id", owner, h.GetConversation)
	r.Get("/:user_id/conversations/:conversation_id/messages", owner, h.ListMessages)
	r.Post("/:user_id/conversations/:conversation_id/message", owner, h.PostMessage)
	r.Post("/:user_id/messages", owner, h.StartConversation)
}

func (h *ConversationHandler) ListConversations(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListConversations(c.Context(), userID)
	if err != nil {
		return mapChatError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"conversations": dto.NewConversationResponses(items)})
}

func (h *ConversationHandler) GetConversation(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}
	convID, err := uuidParam(c, "conversation_id")
	if err != nil {
		return err
	}

	hist, err := h.uc.GetConversationHistory(c.Context(), userID, convID)
	if err != nil {
		return mapChatError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"conversation": dto.ConversationHistoryResponse{
		ConversationResponse: dto.NewConversationResponse(hist.Conversation),
		Messages:             dto.NewMessageResponses(hist.Messages),
	}})
}

func (h *ConversationHandler) ListMessages(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}
	convID, err := uuidParam(c, "conversation_id")
	if err != nil {
		return err
	}

	msgs, err := h.uc.ListMessages(c.Context(), userID, convID)
	if err != nil {
		return mapChatError(err)
	}
	return response.Success(c, fiber.StatusOK, fiber.Map{"messages": dto.NewMessageResponses(msgs)})
}

func (h *ConversationHandler) PostMessage(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}
	convID, err := uuidParam(c, "conversation_id")
	if err != nil {
		return err
	}

	var req dto.PostMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.uc.PostMessage(c.Context(), userID, convID, req.Message)
	if err != nil {
		return mapChatError(err)
	}
	return response.Outcome(c, fiber.StatusOK, reply.Success, fiber.Map{"message": dto.NewMessageResponse(reply.Message)})
}

func (h *ConversationHandler) StartConversation(c fiber.Ctx) error {
	userID, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.PostMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reply, err := h.uc.StartConversation(c.Context(), userID, req.Message)
	if err != nil {
		return mapChatError(err)
	}
	return response.Outcome(c, fiber.StatusOK, reply.Success, fiber.Map{
		"message":      dto.NewMessageResponse(reply.Message),
		"conversation": dto.NewConversationResponse(reply.Conversation),
	})
}

func mapChatError(err error) error {
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Conversation not found", nil, err)
	case errors.Is(err, user.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User profile not found", nil, err)
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, ucchat.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, invalidInputMessage(err), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func invalidInputMessage(err error) string {
	if rest, ok := strings.CutPrefix(err.Error(), ucchat.ErrInvalidInput.Error()+": "); ok && rest != "" {
		return rest
	}
	return "Invalid request payload"
}
