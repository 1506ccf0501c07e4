package user

import (
	"context"
	"errors"
	"fmt"

	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) ListUsers(ctx context.Context) ([]user.User, error) {
	items, err := s.users.List(ctx)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrInvalidInput
	}
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, internal(err)
	}
	return usr, nil
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	prof, err := s.users.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, internal(err)
	}
	return &prof, nil
}

func internal(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
