package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog item.
type Product struct {
	ID          int        `json:"id" bson:"_id"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description" bson:"description"`
	Price       float64    `json:"price" bson:"price"`
	Category    string     `json:"category" bson:"category"`
	InStock     bool       `json:"inStock" bson:"in_stock"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty"`
}
