package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
)

const (
	sessionKeyPrefix          = "sentinel:session:" // sentinel:session:{id}
	sessionEventChannelPrefix = "sentinel:events:"  // sentinel:events:{id}

	// deletedEvent is published when a session is removed; subscribers stop.
	deletedEvent = "deleted"
)

// RedisStore keeps sessions as JSON strings with a sliding TTL and
// publishes each update on a per-session channel.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (r *RedisStore) Kind() string { return "redis" }

func (r *RedisStore) Create(ctx context.Context, s *domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, r.sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Update(ctx context.Context, s *domain.Session) error {
	s.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetXX(ctx, r.sessionKey(s.ID), data, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}

	if err := r.client.Publish(ctx, r.eventChannel(s.ID), data).Err(); err != nil {
		return fmt.Errorf("failed to publish session update: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.sessionKey(id))
	pipe.Publish(ctx, r.eventChannel(id), deletedEvent)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if del.Val() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) Subscribe(ctx context.Context, id string) (<-chan *domain.Session, error) {
	sub := r.client.Subscribe(ctx, r.eventChannel(id))
	// wait for the subscription to be confirmed so no update is missed
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("failed to subscribe to session events: %w", err)
	}

	out := make(chan *domain.Session, 8)
	go func() {
		defer close(out)
		defer sub.Close()

		logger := logging.NewLogger(ctx)
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok || msg.Payload == deletedEvent {
					return
				}
				var s domain.Session
				if err := json.Unmarshal([]byte(msg.Payload), &s); err != nil {
					logger.LogWarnf("session_events", "session=%s bad event payload: %v", id, err)
					continue
				}
				select {
				case out <- &s:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func (r *RedisStore) sessionKey(id string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, id)
}

func (r *RedisStore) eventChannel(id string) string {
	return fmt.Sprintf("%s%s", sessionEventChannelPrefix, id)
}
