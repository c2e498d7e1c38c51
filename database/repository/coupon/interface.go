package couponRepo

import (
	"context"

	"homigo/database"
	"homigo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	Create(ctx context.Context, coupon models.Coupon) error
}

type mongoCouponRepo struct {
	coll *mongo.Collection
}

// NewMongoCouponRepo returns a new CouponRepository instance using MongoDB.
func NewMongoCouponRepo() CouponRepository {
	return &mongoCouponRepo{
		coll: database.DB().Collection("coupons"),
	}
}
