package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/maturomero/huellitas-tpo-front/middleware"
	"github.com/maturomero/huellitas-tpo-front/store"
)

// GET /admin/products/export
func ExportProductsToExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		if !st.Catalog.Loaded() {
			if err := st.Catalog.Fetch(c.Request.Context(), st.Session.Token()); err != nil {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch products"})
				return
			}
		}
		products := st.Catalog.List(store.Filter{})

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Price", "TransferPrice", "Stock",
			"Category", "Animals", "ImageCount", "Status",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.PriceWithTransferDiscount)
			if p.Stock < 0 {
				row.AddCell().SetValue("")
			} else {
				row.AddCell().SetValue(p.Stock)
			}
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(strings.Join(p.Animals, ","))
			row.AddCell().SetValue(len(p.ImageIDs))
			row.AddCell().SetValue(strconv.FormatBool(p.Status))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
