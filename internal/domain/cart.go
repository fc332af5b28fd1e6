package domain

import "time"

// CartItem is one entry in a user's in-memory cart. SelectedPackage is a
// snapshot taken when the item was added, not re-fetched on read.
type CartItem struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	Quantity        int       `json:"quantity"`
	SelectedPackage Package   `json:"selectedPackage"`
	AddedAt         time.Time `json:"addedAt"`
}
