package coupon

import (
	"context"

	couponRepo "homigo/database/repository/coupon"
	"homigo/models"

	"go.uber.org/zap"
)

// CouponService validates coupon codes against the catalog before they are
// handed to the cart core. The cart core itself treats the code as an opaque
// token; the pricing engine has the final say on eligibility.
type CouponService interface {
	Validate(ctx context.Context, code string) (*models.Coupon, error)
}

// DefaultCouponService implements CouponService.
type DefaultCouponService struct {
	Repo   couponRepo.CouponRepository
	Logger *zap.Logger
}
