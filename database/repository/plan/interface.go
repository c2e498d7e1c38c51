package planRepo

import (
	"context"

	"homigo/database"
	"homigo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type VipPlanRepository interface {
	List(ctx context.Context) ([]models.VipPlan, error)
	GetByID(ctx context.Context, id string) (*models.VipPlan, error)
	Create(ctx context.Context, plan models.VipPlan) (string, error)
}

type mongoPlanRepo struct {
	coll *mongo.Collection
}

// NewMongoPlanRepo returns a new VipPlanRepository instance using MongoDB.
func NewMongoPlanRepo() VipPlanRepository {
	return &mongoPlanRepo{
		coll: database.DB().Collection("vip_plans"),
	}
}
