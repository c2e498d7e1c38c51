package models

// PaymentMode selects how the cart total is computed by the pricing engine.
type PaymentMode string

const (
	PaymentModeFullAmount PaymentMode = "fullamount"
	PaymentModeVIP        PaymentMode = "vip"
)

// Valid reports whether the mode is one the pricing engine accepts.
func (m PaymentMode) Valid() bool {
	return m == PaymentModeFullAmount || m == PaymentModeVIP
}

// CartStatus is the state of the cart store's pricing state machine.
// Exactly one status holds at any instant.
type CartStatus string

const (
	CartStatusIdle    CartStatus = "IDLE"
	CartStatusLoading CartStatus = "LOADING"
	CartStatusSuccess CartStatus = "SUCCESS"
	CartStatusEmpty   CartStatus = "EMPTY"
	CartStatusFailure CartStatus = "FAILURE"
)

// CartSelection is the tuple of user choices that drives price computation.
// CouponCode is independent of the other three; VipPlanID is set only under
// VIP payment mode.
type CartSelection struct {
	PaymentMode   PaymentMode `json:"paymentMode"`
	WalletEnabled bool        `json:"walletEnabled"`
	VipPlanID     string      `json:"vipPlanId,omitempty"`
	CouponCode    string      `json:"couponCode,omitempty"`

	// AddressID scopes pricing to the delivery address currently selected
	// in the address book. Read-only input; not owned by the cart core.
	AddressID string `json:"addressId,omitempty"`
}

// DefaultCartSelection is the selection a fresh session starts from.
func DefaultCartSelection() CartSelection {
	return CartSelection{PaymentMode: PaymentModeFullAmount}
}

// CartItem is a single priced line inside a cart group.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CartGroup is one grouping of cart lines (a service category or a package)
// with its own subtotal.
type CartGroup struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// ItemCounts is the cached display count of services and packages in a snapshot.
type ItemCounts struct {
	Services int `json:"services"`
	Packages int `json:"packages"`
}

// AppliedCoupon is the coupon the pricing engine accepted for the snapshot's
// selection, if any.
type AppliedCoupon struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discountValue"`
	IsFree        bool    `json:"isFree"`
}

// CartSnapshot is the last pricing result accepted by the cart store.
// Generation is the sequence number assigned when the producing request was
// dispatched; the store only accepts monotonically newer snapshots.
type CartSnapshot struct {
	Categories        []CartGroup    `json:"categories"`
	Packages          []CartGroup    `json:"packages"`
	TotalPrice        float64        `json:"totalPrice"`
	SavingsAmount     float64        `json:"savingsAmount"`
	ConvenienceCharge float64        `json:"convenienceCharge"`
	ItemCounts        ItemCounts     `json:"itemCounts"`
	AppliedCoupon     *AppliedCoupon `json:"appliedCoupon,omitempty"`
	Generation        uint64         `json:"generation"`
}

// Clone returns a copy that shares no slices or pointers with the receiver.
func (s *CartSnapshot) Clone() *CartSnapshot {
	if s == nil {
		return nil
	}
	out := *s
	out.Categories = cloneGroups(s.Categories)
	out.Packages = cloneGroups(s.Packages)
	if s.AppliedCoupon != nil {
		coupon := *s.AppliedCoupon
		out.AppliedCoupon = &coupon
	}
	return &out
}

func cloneGroups(groups []CartGroup) []CartGroup {
	if groups == nil {
		return nil
	}
	out := make([]CartGroup, len(groups))
	for i, g := range groups {
		g.Items = append([]CartItem(nil), g.Items...)
		out[i] = g
	}
	return out
}

// SubtotalSum returns the sum of all group subtotals across categories and packages.
func (s *CartSnapshot) SubtotalSum() float64 {
	var sum float64
	for _, g := range s.Categories {
		sum += g.Subtotal
	}
	for _, g := range s.Packages {
		sum += g.Subtotal
	}
	return sum
}

// CartState is the read-only view of a cart store handed to observers.
// ErrorMessage is populated only under FAILURE.
type CartState struct {
	Status       CartStatus    `json:"status"`
	Selection    CartSelection `json:"selection"`
	Snapshot     *CartSnapshot `json:"snapshot,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}
