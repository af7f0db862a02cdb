package handlers

import (
	"minimarket/internal/session"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Sessions *session.Store
}

// GET /productos, /productos.html
func (h *ProductHandler) List(c *fiber.Ctx) error {
	productos, err := catalog(c).ListProducts()
	if err != nil {
		return err
	}
	return render(c, h.Sessions, "productos", fiber.Map{"Products": productos})
}
