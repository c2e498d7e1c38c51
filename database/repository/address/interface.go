package addressRepo

import (
	"context"

	"homigo/database"
	"homigo/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AddressRepository interface {
	Create(ctx context.Context, addr models.Address) (string, error)
	GetByID(ctx context.Context, id string) (*models.Address, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Address, error)
	Update(ctx context.Context, addr models.Address) error
	MarkSelected(ctx context.Context, sessionID, id string) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoAddressRepo struct {
	coll *mongo.Collection
}

// NewMongoAddressRepo returns a new AddressRepository instance using MongoDB.
func NewMongoAddressRepo() AddressRepository {
	return &mongoAddressRepo{
		coll: database.DB().Collection("addresses"),
	}
}
