package tenant

import (
	"context"
	"errors"
	"sync"

	"condo-maintenance-backend/internal/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// SwitchHook runs after a successful Switch
type SwitchHook func(ctx context.Context, userID, condominiumID uuid.UUID)

// Manager owns one Store per user
type Manager struct {
	src *Source

	mu     sync.Mutex
	stores map[uuid.UUID]*Store
	hooks  []SwitchHook

	group singleflight.Group
}

// NewManager creates a manager reading from src
func NewManager(src *Source) *Manager {
	return &Manager{src: src, stores: make(map[uuid.UUID]*Store)}
}

// OnSwitch registers a hook called after every successful switch
func (m *Manager) OnSwitch(hook SwitchHook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook)
}

func (m *Manager) store(userID uuid.UUID) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[userID]
	if !ok {
		s = NewStore(userID, m.src)
		m.stores[userID] = s
	}
	return s
}

func (m *Manager) loaded(userID uuid.UUID) (*Store, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[userID]
	return s, ok
}

// Get returns the user's state, initializing it on first use. Concurrent first
// calls share one initialization.
func (m *Manager) Get(ctx context.Context, userID uuid.UUID) (State, error) {
	s := m.store(userID)
	if st := s.Snapshot(); st.Ready {
		return st, nil
	}
	_, err, _ := m.group.Do(userID.String(), func() (interface{}, error) {
		if s.Snapshot().Ready {
			return nil, nil
		}
		return nil, s.Init(ctx)
	})
	if err != nil {
		return State{}, err
	}
	return s.Snapshot(), nil
}

// Refresh reinitializes the user's state, replacing any initialization in flight
func (m *Manager) Refresh(ctx context.Context, userID uuid.UUID) (State, error) {
	s := m.store(userID)
	if err := s.Init(ctx); err != nil {
		return State{}, err
	}
	return s.Snapshot(), nil
}

// Reload refreshes a user whose state is already loaded. Membership changes call
// it so the next read sees the new list; unloaded users pick it up on first Get.
func (m *Manager) Reload(ctx context.Context, userID uuid.UUID) {
	s, ok := m.loaded(userID)
	if !ok || !s.Snapshot().Ready {
		return
	}
	if err := s.Init(ctx); err != nil && !errors.Is(err, ErrSuperseded) {
		logger.WithContext(ctx).WithError(err).WithField("usuario_id", userID.String()).
			Warn("tenant reload failed")
	}
}

// Switch changes the active condominium and runs the switch hooks
func (m *Manager) Switch(ctx context.Context, userID, condominiumID uuid.UUID) (State, error) {
	s := m.store(userID)
	if err := s.Switch(ctx, condominiumID); err != nil {
		return State{}, err
	}

	m.mu.Lock()
	hooks := append([]SwitchHook(nil), m.hooks...)
	m.mu.Unlock()
	for _, hook := range hooks {
		hook(ctx, userID, condominiumID)
	}

	logger.WithContext(ctx).WithField("condominio_id", condominiumID.String()).Info("active condominium switched")
	return s.Snapshot(), nil
}

// Subscribe streams the user's state changes
func (m *Manager) Subscribe(userID uuid.UUID) (<-chan State, func()) {
	return m.store(userID).Subscribe()
}

// Forget drops the user's store and closes its subscriptions
func (m *Manager) Forget(userID uuid.UUID) {
	m.mu.Lock()
	s, ok := m.stores[userID]
	delete(m.stores, userID)
	m.mu.Unlock()
	if ok {
		s.closeSubscribers()
	}
}
