package models

import "time"

// Product is one catalog entry.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductFilter narrows a catalog listing. Zero values mean "no constraint";
// price bounds are pointers so zero is a usable bound.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}
