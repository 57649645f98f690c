package models

import "time"

// CartLine is one product entry in a cart. It carries a snapshot of the
// product at insertion time so the cart survives catalog refreshes.
type CartLine struct {
	ProductID                 uint    `json:"product_id"`
	Name                      string  `json:"name"`
	Price                     float64 `json:"price"`
	PriceWithTransferDiscount float64 `json:"price_with_transfer_discount"`
	Stock                     int     `json:"stock"`
	Units                     int     `json:"units"`
	ImageRef                  string  `json:"image_ref"`
}

// Cart holds the ordered lines plus the two derived totals. Totals are
// never patched incrementally; every mutation recomputes them from the
// line list.
type Cart struct {
	Lines             []CartLine `json:"lines"`
	Total             float64    `json:"total"`
	TotalWithDiscount float64    `json:"total_with_discount"`
}

// CartRecord persists one cart per gateway session.
type CartRecord struct {
	CartID    uint             `gorm:"primaryKey"`
	SessionID string           `gorm:"uniqueIndex"` // Enforces ONE cart per session
	Lines     []CartLineRecord `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CartLineRecord struct {
	ID                        uint `gorm:"primaryKey"`
	CartID                    uint `gorm:"index"`
	ProductID                 uint
	ProductName               string
	ProductImage              string
	ProductStock              int
	Price                     float64
	PriceWithTransferDiscount float64
	Units                     int
	AddedAt                   time.Time
}
