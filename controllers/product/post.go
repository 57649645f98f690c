package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maturomero/huellitas-tpo-front/backend"
	"github.com/maturomero/huellitas-tpo-front/images"
	"github.com/maturomero/huellitas-tpo-front/middleware"
)

type ProductInput struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gt=0"`
	Stock      int     `json:"stock" binding:"min=0"`
	CategoryID uint    `json:"category_id" binding:"required"`
	AnimalIDs  []uint  `json:"animal_ids" binding:"required,min=1"`
}

func (in ProductInput) toBackend() backend.NewProduct {
	return backend.NewProduct{
		Name:       in.Name,
		Price:      in.Price,
		Stock:      in.Stock,
		Status:     true,
		CategoryID: in.CategoryID,
		AnimalIDs:  in.AnimalIDs,
	}
}

// POST /admin/products
func CreateProduct(client *backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := client.CreateProduct(c.Request.Context(), st.Session.Token(), input.toBackend())
		if err != nil {
			st.Notify.Error("Could not create product: " + err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		st.Catalog.Insert(product)
		st.Notify.Success("Product created.")
		c.JSON(http.StatusCreated, product)
	}
}

// POST /admin/products/:id/images
// Accepts a multipart form with one or more "file" parts and forwards
// each to the backend, then refreshes the mirrored product.
func UploadProductImages(client *backend.Client, resolver *images.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := middleware.GetStores(c)

		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["file"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
			return
		}

		token := st.Session.Token()
		for _, header := range files {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
				return
			}
			err = client.UploadImage(c.Request.Context(), token, uint(id), header.Filename, file)
			file.Close()
			if err != nil {
				st.Notify.Error("Image upload failed: " + err.Error())
				c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
				return
			}
		}

		// The cached resolution predates the upload.
		resolver.Invalidate(uint(id))

		product, err := client.GetProduct(c.Request.Context(), token, uint(id))
		if err == nil {
			st.Catalog.Update(product)
		}

		st.Notify.Success("Images uploaded.")
		c.JSON(http.StatusOK, gin.H{"message": "Images uploaded", "count": len(files)})
	}
}
