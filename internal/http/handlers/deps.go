package handlers

import (
	"minimarket/internal/services"
	"minimarket/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type Deps struct {
	CartHandler    *CartHandler
	ProductHandler *ProductHandler
	FormHandler    *ProductFormHandler
	InvoiceHandler *InvoiceHandler
	AuthHandler    *AuthHandler
}

func NewDeps(sessions *session.Store, auth *services.AuthService) *Deps {
	return &Deps{
		CartHandler:    &CartHandler{Sessions: sessions},
		ProductHandler: &ProductHandler{Sessions: sessions},
		FormHandler:    &ProductFormHandler{Sessions: sessions},
		InvoiceHandler: &InvoiceHandler{Sessions: sessions},
		AuthHandler:    &AuthHandler{Auth: auth, Sessions: sessions},
	}
}

// catalog builds the catalog service over the transaction the request
// boundary stored in Locals, so handler reads/writes commit or roll back
// together with the request.
func catalog(c *fiber.Ctx) *services.CatalogService {
	tx := c.Locals("tx").(*sqlx.Tx)
	return services.NewCatalogService(tx)
}
