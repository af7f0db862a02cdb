package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"minimarket/internal/config"
	"minimarket/internal/http/handlers"
	applog "minimarket/internal/log"
	"minimarket/internal/repos"
	"minimarket/internal/services"
	"minimarket/internal/session"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	sessions := session.NewStore()
	authSvc := services.NewAuthService(repos.NewUserRepo(db))

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			if rerr := c.Status(code).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Intenta de nuevo.",
			}); rerr != nil {
				return c.Status(code).SendString("Algo salió mal. Intenta de nuevo.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{
				"Message": "La verificación de seguridad falló. Recarga la página e intenta de nuevo.",
			})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	app.Static("/static", "./web/static")

	// One transaction per request; committed when the handler chain returns
	// clean, rolled back otherwise. Static assets stay outside the boundary.
	transactional := handlers.Transactional(db)
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/static/") {
			return c.Next()
		}
		return transactional(c)
	})

	// ---------- Routes ----------
	deps := handlers.NewDeps(sessions, authSvc)

	app.Get("/", func(c *fiber.Ctx) error { return c.Redirect("/index.html") })
	app.Get("/index.html", func(c *fiber.Ctx) error {
		return c.Render("index", fiber.Map{})
	})

	app.Get("/productos", deps.ProductHandler.List)
	app.Get("/productos.html", deps.ProductHandler.List)

	app.Get("/crear", deps.FormHandler.Form)
	app.Post("/crear", deps.FormHandler.Save)
	app.Get("/producto/form", deps.FormHandler.Form)
	app.Post("/producto/form", deps.FormHandler.Save)

	app.Get("/agregar-carro", deps.CartHandler.Add)
	app.Get("/ver-carro", deps.CartHandler.View)
	app.Get("/descargar-factura", deps.InvoiceHandler.Download)

	app.Get("/login", deps.AuthHandler.LoginForm)
	app.Get("/login.html", deps.AuthHandler.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{
				"Err": "Demasiados intentos. Intenta más tarde.",
			})
		},
	}), deps.AuthHandler.Login)
	app.Get("/logout", deps.AuthHandler.Logout)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{
			"Message": "Página no encontrada",
		})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
