package domain

import (
	"time"
)

// Product represents a product in the storefront catalog.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Featured    bool      `json:"featured,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InStock reports whether the product has any units available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
