package entity

import "time"

type Session struct {
	Token     string
	UserId    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ExpiredAt reports whether the session is past its expiry at now.
// A session is still valid at exactly ExpiresAt.
func (s *Session) ExpiredAt(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
