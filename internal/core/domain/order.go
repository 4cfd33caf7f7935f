package domain

import "time"

// Customer identifies the buyer on a checkout. The phone number is what the
// store replies to on the messaging side.
type Customer struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone" bson:"phone"`
}

// Order records a completed checkout. Orders are write-once receipts of a
// generated messaging link; there is no fulfilment lifecycle on them.
type Order struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	OrderNumber  string    `json:"orderNumber" bson:"order_number"`
	ProductID    string    `json:"productId" bson:"product_id"`
	ProductName  string    `json:"productName" bson:"product_name"`
	UnitPrice    int64     `json:"unitPrice" bson:"unit_price"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	Total        int64     `json:"total" bson:"total"`
	Customer     Customer  `json:"customer" bson:"customer"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	WhatsAppURL  string    `json:"whatsappUrl" bson:"whatsapp_url"`
	CreatedByUID string    `json:"-" bson:"created_by_uid,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}
