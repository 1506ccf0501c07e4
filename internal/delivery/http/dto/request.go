package dto

import "strings"

type PostMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

func (r *PostMessageRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
}

type AdviceRequest struct {
	Question string `json:"question" validate:"max=4000"`
}

func (r *AdviceRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
}
