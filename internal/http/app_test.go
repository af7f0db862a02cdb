package handlers_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"minimarket/internal/http/handlers"
	"minimarket/internal/repos"
	"minimarket/internal/services"
	"minimarket/internal/session"
)

// newApp wires the real handlers over a seeded in-memory DB, with the
// transactional request boundary in front, the way main does.
func newApp(t *testing.T) (*fiber.App, *sqlx.DB, *session.Store) {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one shared in-memory database for the whole pool
	db.SetMaxOpenConns(1)

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Use(handlers.Transactional(db))

	sessions := session.NewStore()
	deps := handlers.NewDeps(sessions, services.NewAuthService(repos.NewUserRepo(db)))

	app.Get("/productos", deps.ProductHandler.List)
	app.Get("/crear", deps.FormHandler.Form)
	app.Post("/crear", deps.FormHandler.Save)
	app.Get("/agregar-carro", deps.CartHandler.Add)
	app.Get("/ver-carro", deps.CartHandler.View)
	app.Get("/descargar-factura", deps.InvoiceHandler.Download)

	return app, db, sessions
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
