package handlers

import (
	"net/http"

	"homigo/middleware"
	"homigo/models"
	"homigo/services/address"
	"homigo/services/cart"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddressHandler manages the session's address book. Selecting a delivery
// address also re-scopes cart pricing through the cart store, so the
// generation discipline is never bypassed.
type AddressHandler struct {
	Service address.AddressService
	Carts   *cart.Manager
	Logger  *zap.Logger
}

func NewAddressHandler(service address.AddressService, carts *cart.Manager, logger *zap.Logger) *AddressHandler {
	return &AddressHandler{Service: service, Carts: carts, Logger: logger}
}

// ListAddressesHandler returns the session's addresses.
func (h *AddressHandler) ListAddressesHandler(c *gin.Context) {
	addrs, err := h.Service.List(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		h.Logger.Error("failed to list addresses", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load addresses", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addrs})
}

// CreateAddressHandler stores a new address for the session.
func (h *AddressHandler) CreateAddressHandler(c *gin.Context) {
	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	input.SessionID = middleware.SessionID(c)

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"address": created})
}

// UpdateAddressHandler rewrites an address owned by the session.
func (h *AddressHandler) UpdateAddressHandler(c *gin.Context) {
	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	input.ID = c.Param("id")
	input.SessionID = middleware.SessionID(c)

	if err := h.Service.Update(c.Request.Context(), input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteAddressHandler removes an address owned by the session.
func (h *AddressHandler) DeleteAddressHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.SessionID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// SelectAddressHandler marks the delivery address and recomputes the cart
// against it.
func (h *AddressHandler) SelectAddressHandler(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	addr, err := h.Service.Select(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := h.Carts.Get(sessionID)
	if err := store.SelectAddress(c.Request.Context(), addr.ID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"address": addr, "cart": cartView(store.State())})
}
