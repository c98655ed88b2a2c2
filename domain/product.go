package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT,
//     category    TEXT,
//     subcategory TEXT,
//     price       NUMERIC,
//     rating      NUMERIC,
//     is_featured BOOLEAN,
//     is_on_sale  BOOLEAN,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text" json:"name"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Subcategory string    `gorm:"column:subcategory;type:text" json:"subcategory"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	Rating      float64   `gorm:"column:rating;type:numeric" json:"rating"`
	IsFeatured  bool      `gorm:"column:is_featured;default:false" json:"is_featured"`
	IsOnSale    bool      `gorm:"column:is_on_sale;default:false" json:"is_on_sale"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
