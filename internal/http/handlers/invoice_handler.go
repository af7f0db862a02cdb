package handlers

import (
	"bytes"

	"minimarket/internal/invoice"
	applog "minimarket/internal/log"
	"minimarket/internal/session"

	"github.com/gofiber/fiber/v2"
)

type InvoiceHandler struct {
	Sessions *session.Store
}

// GET /descargar-factura — streams the cart as a PDF download; with nothing
// in the cart the browser goes back to the cart view instead.
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	ses := h.Sessions.Get(c.Cookies("sid"))
	if ses == nil || ses.Cart == nil || ses.Cart.Empty() {
		return c.Redirect("/ver-carro")
	}

	var buf bytes.Buffer
	if err := invoice.Render(&buf, ses.Cart); err != nil {
		return err
	}

	applog.Info(c, "factura.download", map[string]any{"items": len(ses.Cart.Items())})
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=factura_compra.pdf`)
	return c.Send(buf.Bytes())
}
