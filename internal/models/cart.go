package models

import "time"

// CartItem is one line of a user's cart. Product fields are populated on
// reads by joining against the catalog; only ProductID and Quantity are stored.
type CartItem struct {
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"addedAt"`
}

// Cart is a user's cart with derived totals.
type Cart struct {
	UserID    string     `json:"userId"`
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}
