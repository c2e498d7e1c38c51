package cart

import (
	"context"
	"sync"
	"time"

	"homigo/models"
	"homigo/services/pricing"

	"go.uber.org/zap"
)

const persistTimeout = 2 * time.Second

// Manager hands out one cart store per session and discards stores that have
// been idle past the session TTL, mirroring how the session itself expires.
// When a SelectionStore is configured, each session's selection is persisted
// with the same TTL, so a restarted process restores the toggles and reprices
// on the next request; snapshots are never persisted.
type Manager struct {
	Gateway pricing.Gateway
	Logger  *zap.Logger
	TTL     time.Duration
	Timeout time.Duration

	// Selections, when set, backs the in-memory registry with durable
	// per-session selections. Optional; nil keeps sessions memory-only.
	Selections SelectionStore

	mu      sync.Mutex
	entries map[string]*managedStore
	now     func() time.Time
}

type managedStore struct {
	store    *DefaultCartStore
	lastSeen time.Time
}

// NewManager returns an empty registry.
func NewManager(gw pricing.Gateway, logger *zap.Logger, ttl, timeout time.Duration) *Manager {
	return &Manager{
		Gateway: gw,
		Logger:  logger,
		TTL:     ttl,
		Timeout: timeout,
		entries: make(map[string]*managedStore),
		now:     time.Now,
	}
}

// Get returns the session's store, creating a fresh idle one if the session
// is new or its previous store expired. A persisted selection, if present,
// seeds the fresh store so the session resumes where it left off.
func (m *Manager) Get(sessionID string) *DefaultCartStore {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.evictLocked(now)

	entry, ok := m.entries[sessionID]
	if !ok {
		store := NewCartStore(m.Gateway, m.Logger, m.Timeout)
		if m.Selections != nil {
			if sel := m.loadSelection(sessionID); sel != nil {
				store.selection = *sel
			}
			store.onSelection = func(sel models.CartSelection) {
				m.saveSelection(sessionID, sel)
			}
		}
		entry = &managedStore{store: store}
		m.entries[sessionID] = entry
	}
	entry.lastSeen = now
	return entry.store
}

// Drop discards a session's cart state immediately (navigation away from the
// cart flow, or explicit sign-out), including its persisted selection.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.entries, sessionID)
	m.mu.Unlock()

	if m.Selections != nil {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := m.Selections.Delete(ctx, sessionID); err != nil {
			m.Logger.Warn("failed to delete persisted cart selection",
				zap.String("session", sessionID), zap.Error(err))
		}
	}
}

// Len reports the number of live stores.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Manager) evictLocked(now time.Time) {
	if m.TTL <= 0 {
		return
	}
	for id, entry := range m.entries {
		if now.Sub(entry.lastSeen) > m.TTL {
			delete(m.entries, id)
		}
	}
}

// loadSelection restores a persisted selection; persistence errors degrade to
// a default selection rather than failing the request.
func (m *Manager) loadSelection(sessionID string) *models.CartSelection {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	sel, err := m.Selections.Load(ctx, sessionID)
	if err != nil {
		m.Logger.Warn("failed to restore cart selection",
			zap.String("session", sessionID), zap.Error(err))
		return nil
	}
	return sel
}

func (m *Manager) saveSelection(sessionID string, sel models.CartSelection) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := m.Selections.Save(ctx, sessionID, sel, m.TTL); err != nil {
		m.Logger.Warn("failed to persist cart selection",
			zap.String("session", sessionID), zap.Error(err))
	}
}
