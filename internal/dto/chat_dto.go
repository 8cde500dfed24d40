package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveChatRequest struct {
	Message  string `json:"message" validate:"required,notblank"`
	Response string `json:"response" validate:"required,notblank"`
}

type ChatRecordResponse struct {
	Id        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type SaveChatResponse struct {
	Success bool               `json:"success"`
	Chat    ChatRecordResponse `json:"chat"`
}

type HealthResponse struct {
	Success bool `json:"success"`
}
