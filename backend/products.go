package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/maturomero/huellitas-tpo-front/models"
)

// productPayload tolerates both field spellings the backend has been
// observed to emit. mapProduct is the only place that looks at them.
type productPayload struct {
	ID                             uint    `json:"id"`
	Name                           string  `json:"name"`
	Price                          float64 `json:"price"`
	Stock                          *int    `json:"stock"`
	Status                         bool    `json:"status"`
	PriceWithTransferDiscount      float64 `json:"priceWithTransferDiscount"`
	PriceWithTransferDiscountSnake float64 `json:"price_with_transfer_discount"`
	ProductImages                  []struct {
		ID uint `json:"id"`
	} `json:"productImages"`
	Animal []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"animal"`
	Category struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"category"`
	CategoryName string `json:"categoryName"`
}

func mapProduct(raw productPayload) models.Product {
	transfer := raw.PriceWithTransferDiscount
	if transfer == 0 {
		transfer = raw.PriceWithTransferDiscountSnake
	}

	imageIDs := make([]uint, 0, len(raw.ProductImages))
	for _, img := range raw.ProductImages {
		imageIDs = append(imageIDs, img.ID)
	}

	animals := make([]string, 0, len(raw.Animal))
	for _, a := range raw.Animal {
		animals = append(animals, a.Name)
	}

	// Stock absent from the payload is "unknown", not zero.
	stock := -1
	if raw.Stock != nil {
		stock = *raw.Stock
	}

	category := raw.Category.Description
	if category == "" {
		category = raw.Category.Name
	}
	if category == "" {
		category = raw.CategoryName
	}

	return models.Product{
		ID:                        raw.ID,
		Name:                      raw.Name,
		Price:                     raw.Price,
		PriceWithTransferDiscount: transfer,
		Stock:                     stock,
		Status:                    raw.Status,
		Category:                  category,
		Animals:                   animals,
		ImageIDs:                  imageIDs,
	}
}

// ListProducts fetches the catalog, including out-of-stock entries.
func (c *Client) ListProducts(ctx context.Context, token string) ([]models.Product, error) {
	query := url.Values{"sinStock": {"1"}}
	var raw []productPayload
	if err := c.do(ctx, http.MethodGet, "/products", query, token, nil, &raw); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, mapProduct(p))
	}
	return products, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, token string, id uint) (models.Product, error) {
	var raw productPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, token, nil, &raw); err != nil {
		return models.Product{}, err
	}
	return mapProduct(raw), nil
}

// SearchProducts queries the backend's by-name lookup.
func (c *Client) SearchProducts(ctx context.Context, token, name string) ([]models.Product, error) {
	var raw []productPayload
	if err := c.do(ctx, http.MethodGet, "/products/name/"+url.PathEscape(name), nil, token, nil, &raw); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(raw))
	for _, p := range raw {
		products = append(products, mapProduct(p))
	}
	return products, nil
}

// NewProduct is the create/update request shape the backend expects.
type NewProduct struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Status     bool    `json:"status"`
	CategoryID uint    `json:"categoryId"`
	AnimalIDs  []uint  `json:"animalId"`
}

// CreateProduct creates a product and returns its canonical shape.
func (c *Client) CreateProduct(ctx context.Context, token string, input NewProduct) (models.Product, error) {
	var raw productPayload
	if err := c.do(ctx, http.MethodPost, "/products", nil, token, input, &raw); err != nil {
		return models.Product{}, err
	}
	return mapProduct(raw), nil
}

// UpdateProduct patches a product, then re-reads it: the backend's
// PATCH response is not trusted to carry the full entity.
func (c *Client) UpdateProduct(ctx context.Context, token string, id uint, input NewProduct) (models.Product, error) {
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/products/%d", id), nil, token, input, nil); err != nil {
		return models.Product{}, err
	}
	return c.GetProduct(ctx, token, id)
}

// DeleteProduct removes a product by id.
func (c *Client) DeleteProduct(ctx context.Context, token string, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, token, nil, nil)
}
