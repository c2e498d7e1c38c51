package cart

import (
	"fmt"
	"math"

	"homigo/models"
)

// View projections are pure, synchronous reads over the accepted snapshot.
// They are recomputed on demand and never stored, so they cannot drift from
// the snapshot they describe. All of them tolerate a nil snapshot (IDLE and
// EMPTY states).

// ItemCounts recounts services and packages from the grouped items.
func ItemCounts(snap *models.CartSnapshot) models.ItemCounts {
	if snap == nil {
		return models.ItemCounts{}
	}
	return models.ItemCounts{
		Services: countLines(snap.Categories),
		Packages: countLines(snap.Packages),
	}
}

// HasItems reports whether the snapshot prices anything at all.
func HasItems(snap *models.CartSnapshot) bool {
	counts := ItemCounts(snap)
	return counts.Services > 0 || counts.Packages > 0
}

// FormattedTotal renders the payable total for display.
func FormattedTotal(snap *models.CartSnapshot) string {
	if snap == nil {
		return "₹0.00"
	}
	return fmt.Sprintf("₹%.2f", snap.TotalPrice)
}

// DiscountPercentage is the savings relative to the undiscounted subtotal,
// rounded to two decimals. Zero when nothing was saved or the cart is empty.
func DiscountPercentage(snap *models.CartSnapshot) float64 {
	if snap == nil {
		return 0
	}
	subtotal := snap.SubtotalSum()
	if subtotal <= 0 || snap.SavingsAmount <= 0 {
		return 0
	}
	pct := snap.SavingsAmount / subtotal * 100
	return math.Round(pct*100) / 100
}

func countLines(groups []models.CartGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	return n
}
