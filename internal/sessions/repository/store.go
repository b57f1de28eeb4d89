package repository

import (
	"context"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
)

// Store persists sessions and fans out their updates.
type Store interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Update overwrites the session, refreshes its TTL and notifies
	// subscribers.
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id string) error
	// Subscribe delivers every update of session id until ctx ends. The
	// channel is closed afterwards.
	Subscribe(ctx context.Context, id string) (<-chan *domain.Session, error)
	Ping(ctx context.Context) error
	Kind() string
	Close() error
}
