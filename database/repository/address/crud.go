package addressRepo

import (
	"context"
	"errors"
	"time"

	"homigo/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new address and returns its ID.
func (r *mongoAddressRepo) Create(ctx context.Context, addr models.Address) (string, error) {
	if addr.ID == "" {
		addr.ID = uuid.New().String()
	}
	addr.CreatedAt = time.Now()
	addr.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, addr)
	if err != nil {
		return "", err
	}
	return addr.ID, nil
}

// GetByID returns an address by its ID.
func (r *mongoAddressRepo) GetByID(ctx context.Context, id string) (*models.Address, error) {
	var addr models.Address
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&addr)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// GetBySessionID fetches all addresses owned by a session.
func (r *mongoAddressRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.Address, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addrs []models.Address
	if err := cursor.All(ctx, &addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// Update replaces the mutable fields of an address.
func (r *mongoAddressRepo) Update(ctx context.Context, addr models.Address) error {
	addr.UpdatedAt = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": addr.ID, "sessionId": addr.SessionID}, bson.M{"$set": bson.M{
		"label":     addr.Label,
		"line1":     addr.Line1,
		"line2":     addr.Line2,
		"city":      addr.City,
		"pincode":   addr.Pincode,
		"latitude":  addr.Latitude,
		"longitude": addr.Longitude,
		"updatedAt": addr.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("address not found")
	}
	return nil
}

// MarkSelected flags one address of a session as the delivery address and
// clears the flag on the rest.
func (r *mongoAddressRepo) MarkSelected(ctx context.Context, sessionID, id string) error {
	if _, err := r.coll.UpdateMany(ctx, bson.M{"sessionId": sessionID}, bson.M{"$set": bson.M{"selected": false}}); err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "sessionId": sessionID}, bson.M{"$set": bson.M{"selected": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("address not found")
	}
	return nil
}

// DeleteByID removes an address by ID.
func (r *mongoAddressRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("address not found")
	}
	return nil
}
