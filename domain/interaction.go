package domain

import (
	"time"
)

// Interaction types recorded by the storefront. The recommender tolerates
// anything else with a zero weight, so the list here is not enforced on read.
const (
	InteractionView           = "view"
	InteractionAddToCart      = "add_to_cart"
	InteractionRemoveFromCart = "remove_from_cart"
)

type Interaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	Type      string    `gorm:"column:type;not null" json:"type"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
