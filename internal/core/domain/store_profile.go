package domain

import "time"

// StoreProfile is the single store identity record. There is at most one
// profile; writes upsert it.
type StoreProfile struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Address     string    `json:"address,omitempty" bson:"address,omitempty"`
	Phone       string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Owner       string    `json:"owner,omitempty" bson:"owner,omitempty"`
	Logo        string    `json:"logo,omitempty" bson:"logo,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updated_at"`
}
