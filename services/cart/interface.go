package cart

import (
	"context"
	"sync"
	"time"

	"homigo/models"
	"homigo/services/pricing"

	"go.uber.org/zap"
)

// CartStore is the mutator contract for the pricing orchestration state
// machine. The store is the single writer of the selection and snapshot; all
// other components observe through State(). Every mutator performs a full
// recompute round trip against the pricing gateway, so any of them may block
// until the engine answers or the deadline expires.
//
// Mutators return an error only for invalid local input, before any network
// activity. Gateway outcomes (success, empty cart, pricing failure, timeout)
// are never returned; they land in the store's status and error message.
type CartStore interface {
	SelectPaymentMode(ctx context.Context, mode models.PaymentMode) error
	ToggleWallet(ctx context.Context) error
	SelectVipPlan(ctx context.Context, planID string) error
	ApplyCoupon(ctx context.Context, code string) error
	RemoveCoupon(ctx context.Context) error
	SelectAddress(ctx context.Context, addressID string) error
	Refresh(ctx context.Context) error
	State() models.CartState
}

// DefaultCartStore implements CartStore with a generation counter that
// discards out-of-order pricing responses.
type DefaultCartStore struct {
	Gateway pricing.Gateway
	Logger  *zap.Logger
	// Timeout is applied to every gateway round trip. Zero means the
	// caller's ctx alone bounds the call.
	Timeout time.Duration

	mu         sync.Mutex
	status     models.CartStatus
	selection  models.CartSelection
	snapshot   *models.CartSnapshot
	errMessage string
	latestGen  uint64

	// onSelection, when set, observes every accepted selection change. The
	// manager uses it to persist the selection for session continuity.
	onSelection func(sel models.CartSelection)
}

// NewCartStore returns an idle store with the default selection
// (full amount, wallet off, no plan, no coupon).
func NewCartStore(gw pricing.Gateway, logger *zap.Logger, timeout time.Duration) *DefaultCartStore {
	return &DefaultCartStore{
		Gateway:   gw,
		Logger:    logger,
		Timeout:   timeout,
		status:    models.CartStatusIdle,
		selection: models.DefaultCartSelection(),
	}
}
