package pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(url string) *DefaultPricingGateway {
	return NewDefaultPricingGateway(url, zap.NewNop())
}

func TestFetchPrice(t *testing.T) {
	tests := []struct {
		name          string
		selection     models.CartSelection
		mockHandler   func(w http.ResponseWriter, r *http.Request)
		verifyRequest bool
		wantErr       bool
		checkErr      func(t *testing.T, err error)
		checkSnap     func(t *testing.T, snap *models.CartSnapshot)
	}{
		{
			name: "Success - CamelCase Response",
			selection: models.CartSelection{
				PaymentMode:   models.PaymentModeVIP,
				VipPlanID:     "p1",
				WalletEnabled: true,
				CouponCode:    "FESTIVE50",
			},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"success": true,
					"data": {
						"groupedCart": {
							"categories": [
								{"id": "c1", "name": "Cleaning", "subtotal": 800,
								 "items": [{"id": "s1", "name": "Deep Clean", "quantity": 2, "price": 400}]}
							],
							"packages": [
								{"id": "pk1", "name": "Monsoon Combo", "subtotal": 500,
								 "items": [{"id": "s2", "name": "Combo", "quantity": 1, "price": 500}]}
							]
						},
						"totalPrice": 1250,
						"savingsAmount": 100,
						"convenienceCharge": 50,
						"appliedCoupon": {"code": "FESTIVE50", "discountValue": 100, "isFree": false}
					}
				}`))
			},
			verifyRequest: true,
			checkSnap: func(t *testing.T, snap *models.CartSnapshot) {
				assert.Equal(t, 1250.0, snap.TotalPrice)
				assert.Equal(t, 100.0, snap.SavingsAmount)
				assert.Equal(t, 50.0, snap.ConvenienceCharge)
				assert.Equal(t, models.ItemCounts{Services: 1, Packages: 1}, snap.ItemCounts)
				require.NotNil(t, snap.AppliedCoupon)
				assert.Equal(t, "FESTIVE50", snap.AppliedCoupon.Code)
				assert.Equal(t, 100.0, snap.AppliedCoupon.DiscountValue)
				// Total invariant: subtotals - savings + convenience.
				assert.Equal(t, snap.SubtotalSum()-snap.SavingsAmount+snap.ConvenienceCharge, snap.TotalPrice)
			},
		},
		{
			name:      "Success - Snake Case And Legacy Field Names",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{
					"success": true,
					"data": {
						"groupedCart": {
							"categories": [
								{"category_id": "c9", "category_name": "Salon", "sub_total": 1200,
								 "services": [{"id": "s9", "service_name": "Haircut", "qty": 3, "amount": 400}]}
							]
						},
						"total_price": 1240,
						"savings": 10,
						"convinencecharge": 50,
						"applied_coupon": {"coupon_code": "NEW10", "discount_value": 10, "is_free": true}
					}
				}`))
			},
			checkSnap: func(t *testing.T, snap *models.CartSnapshot) {
				require.Len(t, snap.Categories, 1)
				assert.Equal(t, "c9", snap.Categories[0].ID)
				assert.Equal(t, "Salon", snap.Categories[0].Name)
				assert.Equal(t, 1200.0, snap.Categories[0].Subtotal)
				require.Len(t, snap.Categories[0].Items, 1)
				assert.Equal(t, "Haircut", snap.Categories[0].Items[0].Name)
				assert.Equal(t, 3, snap.Categories[0].Items[0].Quantity)
				assert.Equal(t, 400.0, snap.Categories[0].Items[0].Price)
				assert.Equal(t, 1240.0, snap.TotalPrice)
				assert.Equal(t, 50.0, snap.ConvenienceCharge)
				require.NotNil(t, snap.AppliedCoupon)
				assert.Equal(t, "NEW10", snap.AppliedCoupon.Code)
				assert.True(t, snap.AppliedCoupon.IsFree)
			},
		},
		{
			name:      "Success - Total Computed And Clamped Non-Negative",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				// Savings exceed the subtotal; the normalized total must not go negative.
				w.Write([]byte(`{
					"success": true,
					"data": {
						"groupedCart": {
							"categories": [
								{"id": "c1", "name": "Cleaning",
								 "items": [{"id": "s1", "name": "Quick Clean", "quantity": 1, "price": 100}]}
							]
						},
						"savingsAmount": 500,
						"convenienceCharge": 20
					}
				}`))
			},
			checkSnap: func(t *testing.T, snap *models.CartSnapshot) {
				// Group subtotal is derived from items when absent.
				require.Len(t, snap.Categories, 1)
				assert.Equal(t, 100.0, snap.Categories[0].Subtotal)
				assert.Equal(t, 0.0, snap.TotalPrice)
			},
		},
		{
			name:      "Empty Cart - Business Message",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success": false, "message": "No items found in the cart."}`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var emptyErr *EmptyCartError
				assert.ErrorAs(t, err, &emptyErr)
				var priceErr *PricingError
				assert.NotErrorAs(t, err, &priceErr)
			},
		},
		{
			name:      "Empty Cart - Structured Code",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success": false, "code": "CART_EMPTY", "message": "cart empty"}`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var emptyErr *EmptyCartError
				assert.ErrorAs(t, err, &emptyErr)
			},
		},
		{
			name:      "Failure - Rejected With Message",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"success": false, "message": "Coupon not applicable for this cart."}`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var priceErr *PricingError
				require.ErrorAs(t, err, &priceErr)
				assert.Equal(t, "Coupon not applicable for this cart.", priceErr.Message)
				var emptyErr *EmptyCartError
				assert.NotErrorAs(t, err, &emptyErr)
			},
		},
		{
			name:      "Failure - Server Error",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("Internal Server Error"))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var priceErr *PricingError
				require.ErrorAs(t, err, &priceErr)
				assert.Contains(t, priceErr.Message, "status 500")
			},
		},
		{
			name:      "Failure - Malformed Body",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("{not json"))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var priceErr *PricingError
				require.ErrorAs(t, err, &priceErr)
				assert.Equal(t, "malformedResponse", priceErr.Code)
			},
		},
		{
			name:      "Failure - Success Without Data",
			selection: models.CartSelection{PaymentMode: models.PaymentModeFullAmount},
			mockHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"success": true}`))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var priceErr *PricingError
				require.ErrorAs(t, err, &priceErr)
				assert.Equal(t, "malformedResponse", priceErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.verifyRequest {
					assert.Equal(t, "/v1/cart/price", r.URL.Path)
					assert.Equal(t, http.MethodPost, r.Method)
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

					var req map[string]any
					err := json.NewDecoder(r.Body).Decode(&req)
					require.NoError(t, err)
					assert.Equal(t, "vip", req["paymentType"])
					assert.Equal(t, "p1", req["vipId"])
					assert.Equal(t, true, req["isWallet"])
					assert.Equal(t, "FESTIVE50", req["couponCode"])
				}
				tt.mockHandler(w, r)
			}))
			defer mockServer.Close()

			gw := newTestGateway(mockServer.URL)
			snap, err := gw.FetchPrice(context.Background(), tt.selection)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, snap)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, snap)
				if tt.checkSnap != nil {
					tt.checkSnap(t, snap)
				}
			}
		})
	}
}

func TestFetchPriceTimeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success": true, "data": {"groupedCart": {}}}`))
	}))
	defer mockServer.Close()

	gw := newTestGateway(mockServer.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	snap, err := gw.FetchPrice(ctx, models.CartSelection{PaymentMode: models.PaymentModeFullAmount})
	require.Error(t, err)
	assert.Nil(t, snap)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)

	// A timeout is still a pricing failure for callers that only branch on
	// the broader type.
	var priceErr *PricingError
	assert.ErrorAs(t, err, &priceErr)
	assert.Equal(t, "timeout", priceErr.Code)
}

func TestFetchPriceInvalidMode(t *testing.T) {
	gw := newTestGateway("http://localhost:0")
	_, err := gw.FetchPrice(context.Background(), models.CartSelection{PaymentMode: "credits"})

	var priceErr *PricingError
	require.ErrorAs(t, err, &priceErr)
	assert.Equal(t, "invalidSelection", priceErr.Code)
}
