package handlers

import (
	applog "minimarket/internal/log"
	"minimarket/internal/services"
	"minimarket/internal/session"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Auth     *services.AuthService
	Sessions *session.Store
}

// GET /login — greeting when a session is already authenticated, the login
// form otherwise.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	if ses := h.Sessions.Get(c.Cookies("sid")); ses != nil && ses.Username != "" {
		return render(c, h.Sessions, "saludo", fiber.Map{
			"Logins": h.Auth.Logins(),
		})
	}
	return render(c, h.Sessions, "login", fiber.Map{"Err": ""})
}

// POST /login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user := c.FormValue("user")
	pass := c.FormValue("password")

	if err := h.Auth.Login(user, pass); err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"user": user})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Err":       "Lo sentimos, no tiene acceso o las credenciales son incorrectas",
			"CSRFToken": c.Cookies("csrf_"),
		})
	}

	h.Sessions.Ensure(sid).Username = user
	applog.Audit(c, "auth.login.success", map[string]any{"user": user})
	return c.Redirect("/index.html")
}

// GET /logout — drops the whole session, cart included.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sid := c.Cookies("sid"); sid != "" {
		h.Sessions.Invalidate(sid)
		expireSID(c)
		applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	}
	return c.Redirect("/login.html")
}
