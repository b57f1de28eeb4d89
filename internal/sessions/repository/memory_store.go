package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/logging"
	"github.com/GoSim-25-26J-441/sentinel-backend/internal/sessions/domain"
)

// SweepSchedule is the cron schedule of the expiry sweep.
const SweepSchedule = "0 * * * * *"

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Entries are copied in and
// out as JSON so callers never share a *Session. Expired entries are
// hidden immediately and removed by a cron sweep.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	subs     map[string]map[chan *domain.Session]struct{}
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	onExpire func(n int)
}

type MemoryOption func(*MemoryStore)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStore) { m.now = now }
}

// WithExpiryHook is called with the number of sessions each sweep removed.
func WithExpiryHook(fn func(n int)) MemoryOption {
	return func(m *MemoryStore) { m.onExpire = fn }
}

func NewMemoryStore(ttl time.Duration, opts ...MemoryOption) *MemoryStore {
	m := &MemoryStore{
		sessions: map[string]memoryEntry{},
		subs:     map[string]map[chan *domain.Session]struct{}{},
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// StartSweeper schedules Sweep on SweepSchedule.
func (m *MemoryStore) StartSweeper() error {
	c := cron.New(cron.WithSeconds())
	if _, err := c.AddFunc(SweepSchedule, func() { m.Sweep() }); err != nil {
		return fmt.Errorf("schedule session sweep: %w", err)
	}
	c.Start()

	m.mu.Lock()
	m.cron = c
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Kind() string { return "memory" }

func (m *MemoryStore) Create(_ context.Context, s *domain.Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := m.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live(s.ID); ok {
		return fmt.Errorf("session %s already exists", s.ID)
	}
	m.sessions[s.ID] = memoryEntry{data: data, expiresAt: now.Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.Lock()
	e, ok := m.live(id)
	m.mu.Unlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return decodeSession(e.data)
}

func (m *MemoryStore) Update(_ context.Context, s *domain.Session) error {
	now := m.now().UTC()
	s.UpdatedAt = now

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live(s.ID); !ok {
		return domain.ErrSessionNotFound
	}
	m.sessions[s.ID] = memoryEntry{data: data, expiresAt: now.Add(m.ttl)}
	m.publish(s.ID, data)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live(id); !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.closeSubscribers(id)
	return nil
}

func (m *MemoryStore) Subscribe(ctx context.Context, id string) (<-chan *domain.Session, error) {
	ch := make(chan *domain.Session, 8)

	m.mu.Lock()
	if m.subs[id] == nil {
		m.subs[id] = map[chan *domain.Session]struct{}{}
	}
	m.subs[id][ch] = struct{}{}
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		if set, ok := m.subs[id]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(m.subs, id)
			}
		}
	}()
	return ch, nil
}

// Sweep removes expired sessions and returns how many it removed.
func (m *MemoryStore) Sweep() int {
	now := m.now()

	m.mu.Lock()
	n := 0
	for id, e := range m.sessions {
		if !now.Before(e.expiresAt) {
			delete(m.sessions, id)
			m.closeSubscribers(id)
			n++
		}
	}
	m.mu.Unlock()

	if n > 0 {
		logging.Named("session_sweep").LogInfof("sweep", "removed %d expired sessions", n)
		if m.onExpire != nil {
			m.onExpire(n)
		}
	}
	return n
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *MemoryStore) Ping(context.Context) error { return nil }

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	c := m.cron
	m.cron = nil
	m.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
	return nil
}

// live returns the entry for id if it has not expired. Caller holds mu.
func (m *MemoryStore) live(id string) (memoryEntry, bool) {
	e, ok := m.sessions[id]
	if !ok || !m.now().Before(e.expiresAt) {
		return memoryEntry{}, false
	}
	return e, true
}

// publish hands data to every subscriber of id, dropping the update for
// subscribers whose buffer is full. Caller holds mu.
func (m *MemoryStore) publish(id string, data []byte) {
	for ch := range m.subs[id] {
		s, err := decodeSession(data)
		if err != nil {
			return
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// closeSubscribers ends every subscription of id. Caller holds mu.
func (m *MemoryStore) closeSubscribers(id string) {
	for ch := range m.subs[id] {
		close(ch)
	}
	delete(m.subs, id)
}

func decodeSession(data []byte) (*domain.Session, error) {
	var s domain.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}
