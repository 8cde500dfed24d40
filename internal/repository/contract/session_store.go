package contract

import (
	"context"

	"chatlog-be/internal/entity"
)

// SessionStore maps opaque tokens to sessions. Get returns (nil, nil) for an
// unknown token and Delete of an unknown token is not an error.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, token string) (*entity.Session, error)
	Delete(ctx context.Context, token string) error
}
