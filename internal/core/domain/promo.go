package domain

import "time"

// DiscountType distinguishes percentage discounts from fixed amounts.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Promo is a promotion campaign.
type Promo struct {
	ID           string       `json:"id" bson:"_id,omitempty"`
	Name         string       `json:"name" bson:"name"`
	Description  string       `json:"description,omitempty" bson:"description,omitempty"`
	Discount     float64      `json:"discount" bson:"discount"`
	DiscountType DiscountType `json:"discountType" bson:"discount_type"`
	MinPurchase  int64        `json:"minPurchase,omitempty" bson:"min_purchase,omitempty"`
	MaxDiscount  int64        `json:"maxDiscount,omitempty" bson:"max_discount,omitempty"`
	Code         string       `json:"code,omitempty" bson:"code,omitempty"`
	StartDate    *time.Time   `json:"startDate,omitempty" bson:"start_date,omitempty"`
	EndDate      *time.Time   `json:"endDate,omitempty" bson:"end_date,omitempty"`
	IsActive     bool         `json:"isActive" bson:"is_active"`
	Image        string       `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt    time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updated_at"`
}

// Expired reports whether the promo's end date has passed at the given time.
func (p *Promo) Expired(now time.Time) bool {
	return p.EndDate != nil && p.EndDate.Before(now)
}
