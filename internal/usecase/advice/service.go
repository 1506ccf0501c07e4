package advice

import (
	"context"
	"errors"
	"fmt"

	"career-advisor/internal/domain/advice"
	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

type Service struct {
	users   user.Repository
	advisor advice.Advisor
}

func NewService(users user.Repository, advisor advice.Advisor) *Service {
	return &Service{users: users, advisor: advisor}
}

func (s *Service) GetAdvice(ctx context.Context, userID uuid.UUID, question string) (advice.Result, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return advice.Result{}, user.ErrNotFound
		}
		return advice.Result{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	prof, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return advice.Result{}, user.ErrProfileNotFound
		}
		return advice.Result{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return s.advisor.GetCareerAdvice(ctx, advice.ProfileFromUser(prof), question), nil
}
