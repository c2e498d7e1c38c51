package address

import (
	"context"
	"errors"
	"fmt"

	"homigo/models"
)

// List returns all addresses owned by the session.
func (s *DefaultAddressService) List(ctx context.Context, sessionID string) ([]models.Address, error) {
	addrs, err := s.Repo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addrs, nil
}

// Create validates and stores a new address.
func (s *DefaultAddressService) Create(ctx context.Context, addr models.Address) (*models.Address, error) {
	if addr.SessionID == "" {
		return nil, errors.New("address must belong to a session")
	}
	if addr.Line1 == "" || addr.City == "" || addr.Pincode == "" {
		return nil, errors.New("line1, city and pincode are required")
	}

	id, err := s.Repo.Create(ctx, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

// Update rewrites an existing address owned by the session.
func (s *DefaultAddressService) Update(ctx context.Context, addr models.Address) error {
	if addr.ID == "" || addr.SessionID == "" {
		return errors.New("address id and session are required")
	}
	if err := s.Repo.Update(ctx, addr); err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	return nil
}

// Delete removes an address after checking ownership.
func (s *DefaultAddressService) Delete(ctx context.Context, sessionID, id string) error {
	addr, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("address not found: %w", err)
	}
	if addr.SessionID != sessionID {
		return errors.New("address does not belong to this session")
	}
	return s.Repo.DeleteByID(ctx, id)
}

// Select marks one address as the delivery address and returns it so the
// caller can re-scope cart pricing to it.
func (s *DefaultAddressService) Select(ctx context.Context, sessionID, id string) (*models.Address, error) {
	if err := s.Repo.MarkSelected(ctx, sessionID, id); err != nil {
		return nil, fmt.Errorf("failed to select address: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}
