package handlers

import (
	"minimarket/internal/session"

	"github.com/gofiber/fiber/v2"
)

// render injects the logged-in username (templates gate the price column on
// it) and the CSRF token before handing off to the view engine.
func render(c *fiber.Ctx, sessions *session.Store, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if ses := sessions.Get(c.Cookies("sid")); ses != nil && ses.Username != "" {
		data["Username"] = ses.Username
	}
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		data["CSRFToken"] = tok
	} else if cookTok := c.Cookies("csrf_"); cookTok != "" {
		data["CSRFToken"] = cookTok
	}
	return c.Render(tmpl, data)
}
