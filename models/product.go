package models

// Product is the canonical view shape every layer above the backend
// boundary works with. The backend mapping in the backend package is the
// only place allowed to look at the raw payload field spellings.
type Product struct {
	ID                        uint     `json:"id"`
	Name                      string   `json:"name"`
	Price                     float64  `json:"price"`
	PriceWithTransferDiscount float64  `json:"price_with_transfer_discount"`
	Stock                     int      `json:"stock"` // -1 when the backend never reported a count
	Status                    bool     `json:"status"`
	Category                  string   `json:"category"`
	Animals                   []string `json:"animals"`
	ImageIDs                  []uint   `json:"image_ids"`
}

// HasTransferDiscount reports whether the transfer price should be shown
// as a discount: present and different from the list price.
func (p Product) HasTransferDiscount() bool {
	return p.PriceWithTransferDiscount > 0 && p.PriceWithTransferDiscount != p.Price
}

type Animal struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
