package address

import (
	"context"

	addressRepo "homigo/database/repository/address"
	"homigo/models"

	"go.uber.org/zap"
)

// AddressService manages the session's address book. The cart core consumes
// only the currently selected address id.
type AddressService interface {
	List(ctx context.Context, sessionID string) ([]models.Address, error)
	Create(ctx context.Context, addr models.Address) (*models.Address, error)
	Update(ctx context.Context, addr models.Address) error
	Delete(ctx context.Context, sessionID, id string) error
	Select(ctx context.Context, sessionID, id string) (*models.Address, error)
}

// DefaultAddressService implements AddressService.
type DefaultAddressService struct {
	Repo   addressRepo.AddressRepository
	Logger *zap.Logger
}
