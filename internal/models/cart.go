package models

import "github.com/shopspring/decimal"

// ArtworkSnapshot is a value copy of an artwork taken when it is added to a
// cart. It is never re-fetched; a later price or availability change on the
// artwork does not alter lines already in a cart.
type ArtworkSnapshot struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"` // decimal string, e.g. "1250.00"
	ImageURL string `json:"image_url"`
	ArtistID string `json:"artist_id"`
}

// CartItem is one (artwork, quantity) line in a cart.
type CartItem struct {
	Artwork  ArtworkSnapshot `json:"artwork"`
	Quantity int             `json:"quantity"`
}

// Cart holds a shopper's current purchase intent. Items preserve insertion
// order for display. IsOpen is a presentational panel flag and is never
// persisted.
type Cart struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"-"`
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of unit price times quantity across all lines.
// Lines whose price snapshot does not parse contribute zero; structural
// validation of prices happens at checkout submission, not here.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		price, err := decimal.NewFromString(item.Artwork.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
