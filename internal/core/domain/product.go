package domain

import "time"

// Product is a catalog entry. Prices are stored in whole rupiah.
type Product struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       int64     `json:"price" bson:"price"`
	Stock       *int      `json:"stock,omitempty" bson:"stock,omitempty"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Images      []string  `json:"images,omitempty" bson:"images,omitempty"`
	IsActive    bool      `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}

// InStock reports whether the product can be ordered. A nil stock means the
// product is not stock-tracked and is always orderable.
func (p *Product) InStock(quantity int) bool {
	if p.Stock == nil {
		return true
	}
	return *p.Stock >= quantity
}
