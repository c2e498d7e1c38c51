package pricing

import "homigo/models"

// The engine's response fields arrive in a mix of camelCase, snake_case and
// one historical misspelling ("convinencecharge"). Everything is normalized
// here, at the gateway boundary, so the rest of the core never branches on
// naming variants.

type rawQuote struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Code    string        `json:"code"`
	Data    *rawQuoteData `json:"data"`
}

type rawQuoteData struct {
	GroupedCart rawGroupedCart `json:"groupedCart"`

	TotalPrice      *float64 `json:"totalPrice"`
	TotalPriceSnake *float64 `json:"total_price"`

	SavingsAmount      *float64 `json:"savingsAmount"`
	SavingsAmountSnake *float64 `json:"savings_amount"`
	Savings            *float64 `json:"savings"`

	ConvenienceCharge      *float64 `json:"convenienceCharge"`
	ConvenienceChargeTypo  *float64 `json:"convinencecharge"`
	ConvenienceChargeSnake *float64 `json:"convenience_charge"`

	AppliedCoupon      *rawCoupon `json:"appliedCoupon"`
	AppliedCouponSnake *rawCoupon `json:"applied_coupon"`
}

type rawGroupedCart struct {
	Categories []rawGroup `json:"categories"`
	Packages   []rawGroup `json:"packages"`
}

type rawGroup struct {
	ID           string `json:"id"`
	CategoryID   string `json:"category_id"`
	Name         string `json:"name"`
	CategoryName string `json:"category_name"`

	Subtotal      *float64 `json:"subtotal"`
	SubtotalSnake *float64 `json:"sub_total"`

	Items    []rawItem `json:"items"`
	Services []rawItem `json:"services"`
}

type rawItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ServiceName string `json:"service_name"`

	Quantity *int `json:"quantity"`
	Qty      *int `json:"qty"`

	Price  *float64 `json:"price"`
	Amount *float64 `json:"amount"`
}

type rawCoupon struct {
	Code       string `json:"code"`
	CouponCode string `json:"coupon_code"`

	DiscountValue      *float64 `json:"discountValue"`
	DiscountValueSnake *float64 `json:"discount_value"`
	Discount           *float64 `json:"discount"`

	IsFree      *bool `json:"isFree"`
	IsFreeSnake *bool `json:"is_free"`
}

// normalizeQuote maps the raw engine payload into the single CartSnapshot
// shape. The total invariant (total = subtotals - savings + convenience,
// never negative) is enforced here.
func normalizeQuote(data *rawQuoteData) *models.CartSnapshot {
	snap := &models.CartSnapshot{
		Categories: normalizeGroups(data.GroupedCart.Categories),
		Packages:   normalizeGroups(data.GroupedCart.Packages),
	}

	snap.SavingsAmount = pickFloat(data.SavingsAmount, data.SavingsAmountSnake, data.Savings)
	snap.ConvenienceCharge = pickFloat(data.ConvenienceCharge, data.ConvenienceChargeTypo, data.ConvenienceChargeSnake)

	if total := firstFloat(data.TotalPrice, data.TotalPriceSnake); total != nil {
		snap.TotalPrice = *total
	} else {
		snap.TotalPrice = snap.SubtotalSum() - snap.SavingsAmount + snap.ConvenienceCharge
	}
	if snap.TotalPrice < 0 {
		snap.TotalPrice = 0
	}

	snap.ItemCounts = models.ItemCounts{
		Services: countLines(snap.Categories),
		Packages: countLines(snap.Packages),
	}

	snap.AppliedCoupon = normalizeCoupon(data.AppliedCoupon, data.AppliedCouponSnake)
	return snap
}

func normalizeGroups(raws []rawGroup) []models.CartGroup {
	if len(raws) == 0 {
		return nil
	}
	groups := make([]models.CartGroup, 0, len(raws))
	for _, rg := range raws {
		g := models.CartGroup{
			ID:   firstString(rg.ID, rg.CategoryID),
			Name: firstString(rg.Name, rg.CategoryName),
		}
		lines := rg.Items
		if len(lines) == 0 {
			lines = rg.Services
		}
		for _, ri := range lines {
			qty := 1
			if q := firstInt(ri.Quantity, ri.Qty); q != nil {
				qty = *q
			}
			g.Items = append(g.Items, models.CartItem{
				ID:       ri.ID,
				Name:     firstString(ri.Name, ri.ServiceName),
				Quantity: qty,
				Price:    pickFloat(ri.Price, ri.Amount),
			})
		}
		if sub := firstFloat(rg.Subtotal, rg.SubtotalSnake); sub != nil {
			g.Subtotal = *sub
		} else {
			for _, item := range g.Items {
				g.Subtotal += float64(item.Quantity) * item.Price
			}
		}
		groups = append(groups, g)
	}
	return groups
}

func normalizeCoupon(raws ...*rawCoupon) *models.AppliedCoupon {
	for _, rc := range raws {
		if rc == nil {
			continue
		}
		coupon := &models.AppliedCoupon{
			Code:          firstString(rc.Code, rc.CouponCode),
			DiscountValue: pickFloat(rc.DiscountValue, rc.DiscountValueSnake, rc.Discount),
		}
		if free := firstBool(rc.IsFree, rc.IsFreeSnake); free != nil {
			coupon.IsFree = *free
		}
		return coupon
	}
	return nil
}

func countLines(groups []models.CartGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	return n
}

func pickFloat(vals ...*float64) float64 {
	if v := firstFloat(vals...); v != nil {
		return *v
	}
	return 0
}

func firstFloat(vals ...*float64) *float64 {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstBool(vals ...*bool) *bool {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstString(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
