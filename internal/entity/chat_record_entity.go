package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRecord is one message/response pair owned by a user.
type ChatRecord struct {
	Id        uuid.UUID
	UserId    int64
	Message   string
	Response  string
	Timestamp time.Time
}
