package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"homigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(ttl time.Duration) (*Manager, *stubGateway) {
	gw := &stubGateway{}
	gw.fn = func(ctx context.Context, sel models.CartSelection) (*models.CartSnapshot, error) {
		return snapshotWithTotal(100), nil
	}
	return NewManager(gw, zap.NewNop(), ttl, 0), gw
}

func TestManagerReturnsSameStorePerSession(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	a := m.Get("session-a")
	b := m.Get("session-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Get("session-a"))
	assert.Equal(t, 2, m.Len())
}

func TestManagerStateIsolation(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Get("session-a").SelectVipPlan(ctx, "p1"))

	assert.Equal(t, "p1", m.Get("session-a").State().Selection.VipPlanID)
	assert.Empty(t, m.Get("session-b").State().Selection.VipPlanID)
	assert.Equal(t, models.CartStatusIdle, m.Get("session-b").State().Status)
}

func TestManagerEvictsIdleStores(t *testing.T) {
	m, _ := newTestManager(10 * time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }

	stale := m.Get("session-a")
	require.NoError(t, stale.SelectVipPlan(context.Background(), "p1"))

	// Beyond the TTL the session's cart state is discarded and a fresh
	// idle store is handed out.
	m.now = func() time.Time { return now.Add(11 * time.Minute) }
	fresh := m.Get("session-a")
	assert.NotSame(t, stale, fresh)
	assert.Equal(t, models.CartStatusIdle, fresh.State().Status)
}

func TestManagerKeepsActiveStores(t *testing.T) {
	m, _ := newTestManager(10 * time.Minute)

	now := time.Now()
	m.now = func() time.Time { return now }
	store := m.Get("session-a")

	// Touched within the TTL, repeatedly: never evicted.
	for i := 1; i <= 3; i++ {
		m.now = func() time.Time { return now.Add(time.Duration(i) * 9 * time.Minute / 2) }
		assert.Same(t, store, m.Get("session-a"))
	}
}

func TestManagerDrop(t *testing.T) {
	m, _ := newTestManager(time.Minute)

	first := m.Get("session-a")
	m.Drop("session-a")
	assert.Equal(t, 0, m.Len())
	assert.NotSame(t, first, m.Get("session-a"))
}

// stubSelectionStore is an in-memory SelectionStore with scriptable failures.
type stubSelectionStore struct {
	data    map[string]models.CartSelection
	loadErr error
	saveErr error
}

func newStubSelectionStore() *stubSelectionStore {
	return &stubSelectionStore{data: make(map[string]models.CartSelection)}
}

func (s *stubSelectionStore) Load(ctx context.Context, sessionID string) (*models.CartSelection, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	sel, ok := s.data[sessionID]
	if !ok {
		return nil, nil
	}
	return &sel, nil
}

func (s *stubSelectionStore) Save(ctx context.Context, sessionID string, sel models.CartSelection, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[sessionID] = sel
	return nil
}

func (s *stubSelectionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.data, sessionID)
	return nil
}

func TestManagerPersistsSelections(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	sels := newStubSelectionStore()
	m.Selections = sels

	require.NoError(t, m.Get("session-a").SelectVipPlan(context.Background(), "p1"))

	saved, ok := sels.data["session-a"]
	require.True(t, ok, "mutation persists the selection")
	assert.Equal(t, "p1", saved.VipPlanID)
	assert.Equal(t, models.PaymentModeVIP, saved.PaymentMode)
}

func TestManagerRestoresPersistedSelection(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	sels := newStubSelectionStore()
	sels.data["session-a"] = models.CartSelection{
		PaymentMode:   models.PaymentModeVIP,
		VipPlanID:     "p9",
		WalletEnabled: true,
	}
	m.Selections = sels

	// A fresh store picks up the persisted toggles but stays idle until the
	// next request triggers a recompute.
	state := m.Get("session-a").State()
	assert.Equal(t, models.CartStatusIdle, state.Status)
	assert.Equal(t, "p9", state.Selection.VipPlanID)
	assert.True(t, state.Selection.WalletEnabled)
}

func TestManagerDropDeletesPersistedSelection(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	sels := newStubSelectionStore()
	m.Selections = sels

	require.NoError(t, m.Get("session-a").SelectVipPlan(context.Background(), "p1"))
	m.Drop("session-a")

	_, ok := sels.data["session-a"]
	assert.False(t, ok)
}

func TestManagerToleratesSelectionStoreFailure(t *testing.T) {
	m, _ := newTestManager(time.Minute)
	m.Selections = &stubSelectionStore{
		loadErr: errors.New("redis down"),
		saveErr: errors.New("redis down"),
	}

	store := m.Get("session-a")
	require.NoError(t, store.SelectVipPlan(context.Background(), "p1"))

	// Persistence failures degrade to memory-only sessions.
	state := store.State()
	assert.Equal(t, models.CartStatusSuccess, state.Status)
	assert.Equal(t, "p1", state.Selection.VipPlanID)
}
