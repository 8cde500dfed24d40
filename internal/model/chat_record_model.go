package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatRecord struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    int64     `gorm:"not null;index:idx_chat_records_user_created,priority:1"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_chat_records_user_created,priority:2,sort:desc"`
	// Seq orders records that share a timestamp by insertion.
	Seq int64 `gorm:"autoIncrement;not null;index:idx_chat_records_user_created,priority:3,sort:desc"`
}

func (ChatRecord) TableName() string {
	return "chat_records"
}
