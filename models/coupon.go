package models

import "time"

// Coupon is a promotional code as stored in the catalog. The cart core never
// inspects these fields; it forwards the code to the pricing engine, which
// recomputes eligibility per selection.
type Coupon struct {
	Code        string    `bson:"code" json:"code"`
	Description string    `bson:"description" json:"description"`
	Active      bool      `bson:"active" json:"active"`
	ExpiresAt   time.Time `bson:"expiresAt" json:"expiresAt"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Expired reports whether the coupon's validity window has passed.
func (c *Coupon) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
