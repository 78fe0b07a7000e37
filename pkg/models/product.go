package models

import "github.com/shelfwise/shelfwise/pkg/enums"

// Supplier holds the optional sourcing contact attached to a product.
type Supplier struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Rating is a single user review of a product. The engine enforces at most
// one rating per user per product; the store does not.
type Rating struct {
	UserID string `json:"userId"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Product is the catalog record as stored by the remote collection.
// AvailabilityStatus is derived from Quantity on every fetch; whatever the
// store returns for it is discarded.
type Product struct {
	ID                 string             `json:"id,omitempty"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Manufacturer       string             `json:"manufacturer"`
	ManufacturingDate  string             `json:"manufacturingDate"`
	Price              float64            `json:"price"`
	Quantity           int                `json:"quantity"`
	Category           enums.Category     `json:"category"`
	Supplier           *Supplier          `json:"supplier,omitempty"`
	Ratings            []Rating           `json:"ratings,omitempty"`
	AvailabilityStatus enums.Availability `json:"availabilityStatus,omitempty"`
}

// RatingBy returns the index of the rating left by userID, or -1.
func (p *Product) RatingBy(userID string) int {
	for i, r := range p.Ratings {
		if r.UserID == userID {
			return i
		}
	}
	return -1
}
