package handlers

import (
	"errors"
	"net/http"

	"homigo/middleware"
	"homigo/models"
	"homigo/services/cart"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the cart store's mutator set and read-only state to
// the client. Every mutation responds with the full post-mutation cart view,
// so the client never has to stitch partial updates together.
type CartHandler struct {
	Manager *cart.Manager
	Logger  *zap.Logger
}

func NewCartHandler(manager *cart.Manager, logger *zap.Logger) *CartHandler {
	return &CartHandler{Manager: manager, Logger: logger}
}

func (h *CartHandler) storeFor(c *gin.Context) cart.CartStore {
	return h.Manager.Get(middleware.SessionID(c))
}

// cartView renders the store state plus the derived projections.
func cartView(state models.CartState) gin.H {
	return gin.H{
		"status":       state.Status,
		"selection":    state.Selection,
		"snapshot":     state.Snapshot,
		"errorMessage": state.ErrorMessage,
		"summary": gin.H{
			"itemCounts":         cart.ItemCounts(state.Snapshot),
			"hasItems":           cart.HasItems(state.Snapshot),
			"formattedTotal":     cart.FormattedTotal(state.Snapshot),
			"discountPercentage": cart.DiscountPercentage(state.Snapshot),
		},
	}
}

func (h *CartHandler) respondState(c *gin.Context, store cart.CartStore) {
	c.JSON(http.StatusOK, cartView(store.State()))
}

func (h *CartHandler) dispatch(c *gin.Context, store cart.CartStore, err error) {
	var vErr *cart.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "cart operation failed", err.Error())
		return
	}
	h.respondState(c, store)
}

// GetCart returns the current cart view. A fresh (idle) store is primed with
// an initial recompute so first entry into the cart flow shows a price.
func (h *CartHandler) GetCart(c *gin.Context) {
	store := h.storeFor(c)
	if store.State().Status == models.CartStatusIdle {
		store.Refresh(c.Request.Context())
	}
	h.respondState(c, store)
}

// SelectPaymentMode switches between full-amount and VIP pricing.
func (h *CartHandler) SelectPaymentMode(c *gin.Context) {
	var input struct {
		PaymentMode string `json:"paymentMode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	store := h.storeFor(c)
	h.dispatch(c, store, store.SelectPaymentMode(c.Request.Context(), models.PaymentMode(input.PaymentMode)))
}

// ToggleWallet flips the wallet contribution.
func (h *CartHandler) ToggleWallet(c *gin.Context) {
	store := h.storeFor(c)
	h.dispatch(c, store, store.ToggleWallet(c.Request.Context()))
}

// SelectVipPlan picks a VIP plan; an absent/empty planId clears the plan and
// falls back to full-amount mode.
func (h *CartHandler) SelectVipPlan(c *gin.Context) {
	var input struct {
		PlanID string `json:"planId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	store := h.storeFor(c)
	h.dispatch(c, store, store.SelectVipPlan(c.Request.Context(), input.PlanID))
}

// ApplyCoupon applies a coupon code to the current selection.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	store := h.storeFor(c)
	h.dispatch(c, store, store.ApplyCoupon(c.Request.Context(), input.Code))
}

// RemoveCoupon recomputes without a coupon.
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	store := h.storeFor(c)
	h.dispatch(c, store, store.RemoveCoupon(c.Request.Context()))
}

// Refresh re-issues the current selection (pull-to-refresh).
func (h *CartHandler) Refresh(c *gin.Context) {
	store := h.storeFor(c)
	h.dispatch(c, store, store.Refresh(c.Request.Context()))
}

// DropCart discards the session's cart state.
func (h *CartHandler) DropCart(c *gin.Context) {
	h.Manager.Drop(middleware.SessionID(c))
	c.JSON(http.StatusOK, gin.H{"status": "dropped"})
}
