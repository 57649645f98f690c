package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/maturomero/huellitas-tpo-front/models"
)

type orderLinePayload struct {
	ID                 uint    `json:"id"`
	ProductID          uint    `json:"productId"`
	ProductIDSnake     uint    `json:"product_id"`
	Name               string  `json:"name"`
	Price              float64 `json:"price"`
	PriceDiscount      float64 `json:"priceDiscount"`
	PriceDiscountSnake float64 `json:"price_discount"`
	Units              int     `json:"units"`
	Unit               int     `json:"unit"`
	Date               string  `json:"date"`
}

type orderPayload struct {
	ID                 uint    `json:"id"`
	Price              float64 `json:"price"`
	Discount           float64 `json:"discount"`
	TotalPrice         float64 `json:"totalPrice"`
	TotalPriceSnake    float64 `json:"total_price"`
	Status             string  `json:"status"`
	PaymentMethod      string  `json:"paymentMethod"`
	PaymentMethodSnake string  `json:"payment_method"`
	Date               string  `json:"date"`
	CreatedAt          string  `json:"createdAt"`
	User               *struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"user"`
	OrderProducts []orderLinePayload `json:"orderProducts"`
}

func mapOrder(raw orderPayload) models.Order {
	total := raw.TotalPrice
	if total == 0 {
		total = raw.TotalPriceSnake
	}
	method := raw.PaymentMethod
	if method == "" {
		method = raw.PaymentMethodSnake
	}
	date := raw.Date
	if date == "" {
		date = raw.CreatedAt
	}

	lines := make([]models.OrderLine, 0, len(raw.OrderProducts))
	for _, l := range raw.OrderProducts {
		productID := l.ProductID
		if productID == 0 {
			productID = l.ProductIDSnake
		}
		discount := l.PriceDiscount
		if discount == 0 {
			discount = l.PriceDiscountSnake
		}
		units := l.Units
		if units == 0 {
			units = l.Unit
		}
		if units == 0 {
			units = 1
		}
		lines = append(lines, models.OrderLine{
			ID:            l.ID,
			ProductID:     productID,
			Name:          l.Name,
			Price:         l.Price,
			PriceDiscount: discount,
			Units:         units,
			Date:          l.Date,
		})
	}

	order := models.Order{
		ID:            raw.ID,
		Price:         raw.Price,
		Discount:      raw.Discount,
		TotalPrice:    total,
		Status:        models.OrderStatus(strings.ToUpper(raw.Status)),
		PaymentMethod: method,
		Date:          date,
		Lines:         lines,
	}
	if raw.User != nil {
		order.User = &models.OrderUser{FullName: raw.User.FullName, Email: raw.User.Email}
	}
	return order
}

// ListOrders fetches the caller's order history.
func (c *Client) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	var raw []orderPayload
	if err := c.do(ctx, http.MethodGet, "/orders", nil, token, nil, &raw); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(raw))
	for _, o := range raw {
		orders = append(orders, mapOrder(o))
	}
	return orders, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, token string, id uint) (models.Order, error) {
	var raw orderPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, token, nil, &raw); err != nil {
		return models.Order{}, err
	}
	return mapOrder(raw), nil
}

// OrderProductRequest is one cart line in the order creation payload.
type OrderProductRequest struct {
	ProductID uint `json:"productId"`
	Units     int  `json:"units"`
}

// PlaceOrder creates an order from cart lines. The backend owns the
// pricing; the gateway never sends totals.
func (c *Client) PlaceOrder(ctx context.Context, token, userID, paymentMethod string, lines []OrderProductRequest) (models.Order, error) {
	body := map[string]interface{}{
		"userId":              userID,
		"paymentMethod":       paymentMethod,
		"orderProductRequest": lines,
	}
	var raw orderPayload
	if err := c.do(ctx, http.MethodPost, "/orders", nil, token, body, &raw); err != nil {
		return models.Order{}, err
	}
	return mapOrder(raw), nil
}

// DeleteOrder removes an order by id.
func (c *Client) DeleteOrder(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, token, nil, nil)
}
