package couponRepo

import (
	"context"
	"time"

	"homigo/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByCode returns a coupon by its normalized code.
func (r *mongoCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.coll.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

// Create inserts a new coupon.
func (r *mongoCouponRepo) Create(ctx context.Context, coupon models.Coupon) error {
	coupon.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, coupon)
	return err
}
