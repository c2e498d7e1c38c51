package pricing

import (
	"context"
	"net/http"
	"time"

	"homigo/models"

	"go.uber.org/zap"
)

// Gateway turns a cart selection into one pricing engine round trip and a
// normalized snapshot. Implementations must be stateless and perform no
// retries; the caller owns retry policy and the request deadline via ctx.
type Gateway interface {
	FetchPrice(ctx context.Context, sel models.CartSelection) (*models.CartSnapshot, error)
}

// DefaultPricingGateway implements Gateway against the remote pricing engine's
// REST contract.
type DefaultPricingGateway struct {
	BaseURL string
	Client  *http.Client
	Logger  *zap.Logger
}

// NewDefaultPricingGateway returns a gateway for the engine at baseURL.
func NewDefaultPricingGateway(baseURL string, logger *zap.Logger) *DefaultPricingGateway {
	return &DefaultPricingGateway{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
		Logger:  logger,
	}
}
