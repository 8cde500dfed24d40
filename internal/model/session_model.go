package model

import "time"

type Session struct {
	Token     string    `gorm:"type:varchar(64);primaryKey"`
	UserId    int64     `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

func (Session) TableName() string {
	return "sessions"
}
