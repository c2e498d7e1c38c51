package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"homigo/models"

	"go.uber.org/zap"
)

// quoteRequest is the pricing engine's request body.
type quoteRequest struct {
	PaymentType string `json:"paymentType"`
	VipID       string `json:"vipId"`
	IsWallet    bool   `json:"isWallet"`
	CouponCode  string `json:"couponCode,omitempty"`
	AddressID   string `json:"addressId,omitempty"`
}

// FetchPrice performs one recompute round trip for the given selection.
// It returns *EmptyCartError for the engine's business "nothing to price"
// response, *TimeoutError when ctx's deadline expires, and *PricingError for
// every other non-success outcome.
func (g *DefaultPricingGateway) FetchPrice(ctx context.Context, sel models.CartSelection) (*models.CartSnapshot, error) {
	if !sel.PaymentMode.Valid() {
		return nil, &PricingError{Code: "invalidSelection", Message: fmt.Sprintf("unknown payment mode %q", sel.PaymentMode)}
	}

	payload := quoteRequest{
		PaymentType: string(sel.PaymentMode),
		VipID:       sel.VipPlanID,
		IsWallet:    sel.WalletEnabled,
		CouponCode:  sel.CouponCode,
		AddressID:   sel.AddressID,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &PricingError{Code: "encodeRequest", Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/v1/cart/price", bytes.NewReader(body))
	if err != nil {
		return nil, &PricingError{Code: "buildRequest", Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			g.Logger.Warn("pricing engine call timed out", zap.String("paymentType", payload.PaymentType))
			return nil, newTimeoutError("pricing engine did not respond in time")
		}
		return nil, &PricingError{Code: "network", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		g.Logger.Warn("pricing engine returned non-2xx",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", raw))
		return nil, &PricingError{
			Code:    "upstreamError",
			Message: fmt.Sprintf("pricing engine returned status %d", resp.StatusCode),
		}
	}

	var quote rawQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, &PricingError{Code: "malformedResponse", Message: err.Error()}
	}

	if !quote.Success {
		if quote.Message == EmptyCartMessage || quote.Code == emptyCartCode {
			return nil, &EmptyCartError{}
		}
		msg := quote.Message
		if msg == "" {
			msg = "pricing engine rejected the request"
		}
		return nil, &PricingError{Code: "pricingRejected", Message: msg}
	}
	if quote.Data == nil {
		return nil, &PricingError{Code: "malformedResponse", Message: "success response carried no data"}
	}

	return normalizeQuote(quote.Data), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
