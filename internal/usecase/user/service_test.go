package user

import (
	"context"
	"errors"
	"testing"

	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	users    map[uuid.UUID]user.User
	profiles map[uuid.UUID]user.Profile
	err      error
}

func (m mockUserRepo) List(context.Context) ([]user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]user.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m mockUserRepo) GetProfileByUserID(_ context.Context, id uuid.UUID) (user.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return user.Profile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func TestGetProfile_UserWithoutProfileIsNotAnError(t *testing.T) {
	id := uuid.New()
	svc := NewService(mockUserRepo{users: map[uuid.UUID]user.User{id: {ID: id, Name: "Ada"}}})

	prof, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, prof)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	svc := NewService(mockUserRepo{})

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestGetProfile_Found(t *testing.T) {
	id := uuid.New()
	style := user.WorkStyleHybrid
	svc := NewService(mockUserRepo{
		users:    map[uuid.UUID]user.User{id: {ID: id}},
		profiles: map[uuid.UUID]user.Profile{id: {UserID: id, PreferredWorkStyle: &style}},
	})

	prof, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, prof)
	assert.Equal(t, "hybrid", *prof.PreferredWorkStyle)
}

func TestListUsers_StorageFailure(t *testing.T) {
	svc := NewService(mockUserRepo{err: errors.New("timeout")})

	_, err := svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetUser_NilID(t *testing.T) {
	_, err := NewService(mockUserRepo{}).GetUser(context.Background(), uuid.Nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
