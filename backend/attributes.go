package backend

import (
	"context"
	"net/http"

	"github.com/maturomero/huellitas-tpo-front/models"
)

type attributePayload struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListAnimals returns the animal-type reference list.
func (c *Client) ListAnimals(ctx context.Context, token string) ([]models.Animal, error) {
	var raw []attributePayload
	if err := c.do(ctx, http.MethodGet, "/animals", nil, token, nil, &raw); err != nil {
		return nil, err
	}
	animals := make([]models.Animal, 0, len(raw))
	for _, a := range raw {
		animals = append(animals, models.Animal{ID: a.ID, Name: a.Name})
	}
	return animals, nil
}

// ListCategories returns the category reference list. Categories label
// themselves in the description field.
func (c *Client) ListCategories(ctx context.Context, token string) ([]models.Category, error) {
	var raw []attributePayload
	if err := c.do(ctx, http.MethodGet, "/categories", nil, token, nil, &raw); err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(raw))
	for _, cat := range raw {
		name := cat.Description
		if name == "" {
			name = cat.Name
		}
		categories = append(categories, models.Category{ID: cat.ID, Name: name})
	}
	return categories, nil
}
