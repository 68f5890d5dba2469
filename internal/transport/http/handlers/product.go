package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type productResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// ListProducts returns a page of products ordered by price descending.
func (h *Handler) ListProducts(c *fiber.Ctx) error {
	limit := int64(c.QueryInt("limit", 20))
	offset := int64(c.QueryInt("offset", 0))

	products, err := h.store.Products(c.Context(), limit, offset)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]productResponse, len(products))
	for i, p := range products {
		out[i] = productResponse{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	return c.Status(http.StatusOK).JSON(struct {
		Products []productResponse `json:"products"`
	}{Products: out})
}
