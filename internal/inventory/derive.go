// Package inventory holds the derived-state computations: availability
// classification, stock alerting, rating aggregation and filtering. All
// functions are pure; callers own persistence.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shelfwise/shelfwise/pkg/enums"
	"github.com/shelfwise/shelfwise/pkg/models"
)

// DefaultLowStockThreshold is the quantity below which a product is flagged
// in stock alerts.
const DefaultLowStockThreshold = 5

// Classify maps a quantity onto its availability status.
func Classify(quantity int) enums.Availability {
	switch {
	case quantity > 10:
		return enums.AvailabilityInStock
	case quantity > 0:
		return enums.AvailabilityLowStock
	default:
		return enums.AvailabilityOutOfStock
	}
}

// Annotate recomputes the availability status of every product in place and
// returns the slice for chaining. Stored statuses are never trusted.
func Annotate(products []models.Product) []models.Product {
	for i := range products {
		products[i].AvailabilityStatus = Classify(products[i].Quantity)
	}
	return products
}

// AverageRating returns the arithmetic mean of the ratings rounded half away
// from zero to one decimal place, or 0 for an empty list.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromInt(int64(r.Rating)))
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(ratings))))
	avg, _ := mean.Round(1).Float64()
	return avg
}

// StockAlerts returns one human-readable message per product whose quantity
// is below threshold, in input order. The input is not mutated.
func StockAlerts(products []models.Product, threshold int) []string {
	var alerts []string
	for _, p := range products {
		if p.Quantity < threshold {
			alerts = append(alerts, fmt.Sprintf("%s is low in stock (%d units remaining)", p.Name, p.Quantity))
		}
	}
	return alerts
}

// Filter returns the products matching both the optional exact category and
// the optional case-insensitive name substring, preserving input order.
func Filter(products []models.Product, category enums.Category, searchTerm string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	needle := strings.ToLower(searchTerm)
	for _, p := range products {
		if category != "" && p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
