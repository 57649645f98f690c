package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/middleware"
	"github.com/maturomero/huellitas-tpo-front/store"
)

// GET /products
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		// Mirror the catalog on first use (or on demand).
		if !st.Catalog.Loaded() || c.Query("refresh") == "1" {
			if err := st.Catalog.Fetch(c.Request.Context(), st.Session.Token()); err != nil {
				st.Notify.Error("Could not load products: " + err.Error())
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
				return
			}
		}

		// Filtering params
		filter := store.Filter{
			Animal:   c.Query("animal"),
			Category: c.Query("category"),
			Search:   c.Query("search"),
		}
		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = mp
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = mp
		}

		c.JSON(http.StatusOK, st.Catalog.List(filter))
	}
}
