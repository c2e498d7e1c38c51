package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"homigo/models"
)

// CouponError reports a code that cannot be applied.
type CouponError struct {
	Code    string
	Message string
}

func (e *CouponError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Validate trims and upper-cases the code, then checks existence, active
// flag and expiry. Returns the catalog entry for display on success.
func (s *DefaultCouponService) Validate(ctx context.Context, code string) (*models.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &CouponError{Code: "emptyCode", Message: "coupon code must not be empty"}
	}

	coupon, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		return nil, &CouponError{Code: "notFound", Message: fmt.Sprintf("coupon %s does not exist", code)}
	}
	if !coupon.Active {
		return nil, &CouponError{Code: "inactive", Message: fmt.Sprintf("coupon %s is no longer active", code)}
	}
	if coupon.Expired(time.Now()) {
		return nil, &CouponError{Code: "expired", Message: fmt.Sprintf("coupon %s has expired", code)}
	}
	return coupon, nil
}
