package entities

import "time"

type Product struct {
	ID          int64
	SKU         string
	Name        string
	Unit        string // кг, шт, ящик
	Price       int64
	IsActivated bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductModify struct {
	ID          *int64
	SKU         *string
	Name        *string
	Unit        *string
	Price       *int64
	IsActivated *bool
}
