package dto

import (
	"time"

	"career-advisor/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type UserProfileResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	YearsExperience    *int       `json:"years_experience"`
	Skills             []string   `json:"skills"`
	CareerGoals        *string    `json:"career_goals"`
	PreferredWorkStyle *string    `json:"preferred_work_style"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func NewUserResponses(items []user.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewUserProfileResponse(p user.Profile) UserProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserProfileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		YearsExperience:    p.YearsExperience,
		Skills:             skills,
		CareerGoals:        p.CareerGoals,
		PreferredWorkStyle: p.PreferredWorkStyle,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
