package usecase

import (
	"context"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/user"
	ucadvice "career-advisor/internal/usecase/advice"

	"github.com/google/uuid"
)

type AdviceUsecase interface {
	GetAdvice(ctx context.Context, userID uuid.UUID, question string) (advice.Result, error)
}

func NewAdviceUsecase(users user.Repository, advisor advice.Advisor) AdviceUsecase {
	return ucadvice.NewService(users, advisor)
}
