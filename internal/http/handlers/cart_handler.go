package handlers

import (
	"minimarket/internal/cart"
	applog "minimarket/internal/log"
	"minimarket/internal/session"
	"minimarket/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Sessions *session.Store
}

// GET /agregar-carro?id=
// A missing or unknown product is ignored; either way the browser lands on
// the cart view.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)

	id := validate.Int64(c.Query("id"))
	if id > 0 {
		p, err := catalog(c).GetProduct(id)
		if err != nil {
			return err
		}
		if p != nil {
			ses := h.Sessions.Ensure(sid)
			if ses.Cart == nil {
				ses.Cart = cart.New()
			}
			if err := ses.Cart.AddItem(*p, 1); err != nil {
				applog.Security(c, "cart.add.invalid", map[string]any{"product": id})
			}
		}
	}
	return c.Redirect("/ver-carro")
}

// GET /ver-carro
func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)

	data := fiber.Map{}
	if ses := h.Sessions.Get(sid); ses != nil && ses.Cart != nil && !ses.Cart.Empty() {
		data["Cart"] = ses.Cart
	}
	return render(c, h.Sessions, "carro", data)
}
