package models

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "PENDING"  // payment pending
	OrderStatusApproved OrderStatus = "APPROVED" // payment approved
	OrderStatusDeleted  OrderStatus = "DELETED"  // order cancelled
)

// Order mirrors one order as reported by the backend, normalized into a
// single shape. Orders are created server-side; the gateway only reads,
// lists and deletes them.
type Order struct {
	ID            uint        `json:"id"`
	Price         float64     `json:"price"`
	Discount      float64     `json:"discount"`
	TotalPrice    float64     `json:"total_price"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Date          string      `json:"date"`
	User          *OrderUser  `json:"user,omitempty"`
	Lines         []OrderLine `json:"lines"`
}

type OrderUser struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// OrderLine is one product entry within an order.
type OrderLine struct {
	ID            uint    `json:"id"`
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	PriceDiscount float64 `json:"price_discount"`
	Units         int     `json:"units"`
	Date          string  `json:"date"`
}
