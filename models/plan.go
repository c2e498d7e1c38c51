package models

import "time"

// VipPlan is a purchasable VIP membership plan. The cart core consumes a plan
// only by its ID; the catalog fields exist for display.
type VipPlan struct {
	ID        string    `bson:"id" json:"id"`
	PlanName  string    `bson:"planName" json:"planName"`
	Price     float64   `bson:"price" json:"price"`
	Savings   float64   `bson:"savings" json:"savings"`
	Months    int       `bson:"months" json:"months"`
	Active    bool      `bson:"active" json:"active"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
