package handlers

import (
	"time"

	applog "minimarket/internal/log"
	"minimarket/internal/repos"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Transactional is the request boundary: one transaction per request,
// exposed to handlers via Locals("tx"), committed when the chain finishes
// cleanly and rolled back when any error comes out of it. The client then
// sees a generic server error; there is no retry.
func Transactional(db *sqlx.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := repos.WithTx(db, func(tx *sqlx.Tx) error {
			c.Locals("tx", tx)
			return c.Next()
		})
		if err != nil {
			applog.Error(c, "request.rollback", err, nil)
			return fiber.NewError(fiber.StatusInternalServerError, "Algo salió mal. Intenta de nuevo.")
		}
		return nil
	}
}

// ensureSID returns the browser's session id, minting the cookie on first
// contact.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

func expireSID(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
