package orderControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

type PlaceOrderInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // e.g. "CARD", "TRANSFER"
}

// POST /orders
// Creates an order from the session's cart. Pricing and stock are the
// backend's call; on success the cart is cleared and the mirrored
// stock counts are decremented.
func PlaceOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		cart := st.Cart.Snapshot()
		if len(cart.Lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
			return
		}

		lines := make([]backend.OrderProductRequest, 0, len(cart.Lines))
		for _, line := range cart.Lines {
			lines = append(lines, backend.OrderProductRequest{ProductID: line.ProductID, Units: line.Units})
		}

		sess := st.Session.Snapshot()
		order, err := st.Orders.Place(c.Request.Context(), sess.Token, sess.UserID,
			strings.ToUpper(input.PaymentMethod), lines)
		if err != nil {
			st.Notify.Error("Payment failed: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		for _, line := range cart.Lines {
			st.Catalog.DecrementStock(line.ProductID, line.Units)
		}
		st.Cart.Clear()
		st.Notify.Success("Payment completed.")

		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders
func GetOrdersHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		orders, err := st.Orders.Fetch(c.Request.Context(), st.Session.Token())
		if err != nil {
			st.Notify.Error("Could not load orders: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := st.Orders.Get(c.Request.Context(), st.Session.Token(), uint(orderID))
		if err != nil {
			if apiErr, ok := err.(*backend.APIError); ok && apiErr.Status == http.StatusNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /orders/:orderID
func DeleteOrderHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		if err := st.Orders.Delete(c.Request.Context(), st.Session.Token(), uint(orderID)); err != nil {
			st.Notify.Error("Could not delete order: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
