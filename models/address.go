package models

import "time"

// Address is a delivery address in the user's address book. The cart core
// reads only the selected address ID to scope pricing.
type Address struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"-"`
	Label     string    `bson:"label" json:"label"`
	Line1     string    `bson:"line1" json:"line1"`
	Line2     string    `bson:"line2" json:"line2,omitempty"`
	City      string    `bson:"city" json:"city"`
	Pincode   string    `bson:"pincode" json:"pincode"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	Selected  bool      `bson:"selected" json:"selected"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
