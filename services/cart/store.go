package cart

import (
	"context"
	"errors"
	"strings"

	"homigo/models"
	"homigo/services/pricing"

	"go.uber.org/zap"
)

// recompute is the shared transition every mutator takes: merge the partial
// update onto the current selection under the lock, issue a new generation,
// go LOADING, round-trip the gateway outside the lock, then apply the result
// only if no newer generation has been issued meanwhile.
func (s *DefaultCartStore) recompute(ctx context.Context, mutate func(sel *models.CartSelection)) {
	s.mu.Lock()
	next := s.selection
	mutate(&next)
	s.latestGen++
	gen := s.latestGen
	s.selection = next
	s.status = models.CartStatusLoading
	s.mu.Unlock()

	if s.onSelection != nil {
		s.onSelection(next)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	snap, err := s.Gateway.FetchPrice(ctx, next)
	s.apply(gen, snap, err)
}

// apply records a gateway outcome. Responses are accepted in issuance order:
// anything older than the latest issued generation is discarded silently,
// even if it completed last. There is no transport-level cancellation; this
// check alone keeps a slow stale request from clobbering a newer choice.
func (s *DefaultCartStore) apply(gen uint64, snap *models.CartSnapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.latestGen {
		s.Logger.Debug("discarding superseded pricing response",
			zap.Uint64("generation", gen), zap.Uint64("latest", s.latestGen))
		return
	}

	var emptyErr *pricing.EmptyCartError
	var priceErr *pricing.PricingError
	switch {
	case err == nil:
		snap.Generation = gen
		s.snapshot = snap
		s.status = models.CartStatusSuccess
		s.errMessage = ""
	case errors.As(err, &emptyErr):
		s.snapshot = nil
		s.status = models.CartStatusEmpty
		s.errMessage = ""
	case errors.As(err, &priceErr):
		// The last accepted snapshot is kept so the UI never blanks the
		// cart over a transient engine error; the failing selection stays
		// current so a retry re-issues the same request.
		s.status = models.CartStatusFailure
		s.errMessage = priceErr.Message
	default:
		s.status = models.CartStatusFailure
		s.errMessage = err.Error()
	}
}

// SelectPaymentMode switches between full-amount and VIP-subsidized pricing.
// Switching to full amount clears the VIP plan; any mode change clears the
// coupon, since the engine recomputes coupon eligibility per selection.
func (s *DefaultCartStore) SelectPaymentMode(ctx context.Context, mode models.PaymentMode) error {
	if !mode.Valid() {
		return &ValidationError{Field: "paymentMode", Message: "must be fullamount or vip"}
	}
	s.recompute(ctx, func(sel *models.CartSelection) {
		sel.PaymentMode = mode
		if mode == models.PaymentModeFullAmount {
			sel.VipPlanID = ""
		}
		sel.CouponCode = ""
	})
	return nil
}

// ToggleWallet flips the wallet contribution and clears the coupon.
func (s *DefaultCartStore) ToggleWallet(ctx context.Context) error {
	s.recompute(ctx, func(sel *models.CartSelection) {
		sel.WalletEnabled = !sel.WalletEnabled
		sel.CouponCode = ""
	})
	return nil
}

// SelectVipPlan picks a VIP plan (forcing VIP payment mode) or, with an empty
// planID, drops the plan and falls back to full-amount mode. Clears the coupon.
func (s *DefaultCartStore) SelectVipPlan(ctx context.Context, planID string) error {
	s.recompute(ctx, func(sel *models.CartSelection) {
		if planID != "" {
			sel.PaymentMode = models.PaymentModeVIP
			sel.VipPlanID = planID
		} else {
			sel.PaymentMode = models.PaymentModeFullAmount
			sel.VipPlanID = ""
		}
		sel.CouponCode = ""
	})
	return nil
}

// ApplyCoupon recomputes the cart with the coupon applied. Coupon application
// is a full round trip, not a local discount: the engine decides eligibility
// and returns the decorated snapshot.
func (s *DefaultCartStore) ApplyCoupon(ctx context.Context, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return &ValidationError{Field: "couponCode", Message: "coupon code must not be empty"}
	}
	s.recompute(ctx, func(sel *models.CartSelection) {
		sel.CouponCode = code
	})
	return nil
}

// RemoveCoupon recomputes without a coupon code.
func (s *DefaultCartStore) RemoveCoupon(ctx context.Context) error {
	s.recompute(ctx, func(sel *models.CartSelection) {
		sel.CouponCode = ""
	})
	return nil
}

// SelectAddress scopes pricing to a delivery address. The address book owns
// the address itself; the store only carries the id on the quote request.
func (s *DefaultCartStore) SelectAddress(ctx context.Context, addressID string) error {
	if addressID == "" {
		return &ValidationError{Field: "addressId", Message: "address id must not be empty"}
	}
	s.recompute(ctx, func(sel *models.CartSelection) {
		sel.AddressID = addressID
	})
	return nil
}

// Refresh re-issues the current selection unchanged. Used for pull-to-refresh
// and re-entry into the cart flow.
func (s *DefaultCartStore) Refresh(ctx context.Context) error {
	s.recompute(ctx, func(sel *models.CartSelection) {})
	return nil
}

// State returns a read-only view of the store. The snapshot is deep-copied,
// groups and items included, so observers cannot write back into the store's
// accepted state.
func (s *DefaultCartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.CartState{
		Status:       s.status,
		Selection:    s.selection,
		ErrorMessage: s.errMessage,
	}
	state.Snapshot = s.snapshot.Clone()
	return state
}
