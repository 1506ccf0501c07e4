package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Profile struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	YearsExperience    *int
	Skills             []string
	CareerGoals        *string
	PreferredWorkStyle *string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

const (
	WorkStyleRemote = "remote"
	WorkStyleHybrid = "hybrid"
	WorkStyleOnsite = "onsite"
)

func IsValidWorkStyle(s string) bool {
	switch s {
	case WorkStyleRemote, WorkStyleHybrid, WorkStyleOnsite:
		return true
	default:
		return false
	}
}
