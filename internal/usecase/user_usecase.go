package usecase

import (
	"context"

	"career-advisor/internal/domain/user"
	ucuser "career-advisor/internal/usecase/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (user.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(users user.Repository) *User {
	return &User{svc: ucuser.NewService(users)}
}

func (u *User) ListUsers(ctx context.Context) ([]user.User, error) {
	return u.svc.ListUsers(ctx)
}

func (u *User) GetUser(ctx context.Context, userID uuid.UUID) (user.User, error) {
	return u.svc.GetUser(ctx, userID)
}

func (u *User) GetProfile(ctx context.Context, userID uuid.UUID) (*user.Profile, error) {
	return u.svc.GetProfile(ctx, userID)
}
