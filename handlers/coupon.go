package handlers

import (
	"errors"
	"net/http"

	"homigo/services/coupon"
	"homigo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CouponHandler validates coupon codes ahead of cart application.
type CouponHandler struct {
	Service coupon.CouponService
	Logger  *zap.Logger
}

func NewCouponHandler(service coupon.CouponService, logger *zap.Logger) *CouponHandler {
	return &CouponHandler{Service: service, Logger: logger}
}

// ValidateCouponHandler checks a code against the catalog. The pricing engine
// still has the final say when the code is applied to the cart.
func (h *CouponHandler) ValidateCouponHandler(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.Service.Validate(c.Request.Context(), input.Code)
	if err != nil {
		var cErr *coupon.CouponError
		if errors.As(err, &cErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"valid": false, "error": cErr.Message})
			return
		}
		h.Logger.Error("coupon validation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to validate coupon", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "coupon": entry})
}
