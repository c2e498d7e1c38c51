package planRepo

import (
	"context"
	"time"

	"homigo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns all active plans, cheapest first.
func (r *mongoPlanRepo) List(ctx context.Context) ([]models.VipPlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.VipPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// GetByID returns a plan by its ID.
func (r *mongoPlanRepo) GetByID(ctx context.Context, id string) (*models.VipPlan, error) {
	var plan models.VipPlan
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plan)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Create inserts a new plan and returns its ID.
func (r *mongoPlanRepo) Create(ctx context.Context, plan models.VipPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, plan)
	if err != nil {
		return "", err
	}
	return plan.ID, nil
}
