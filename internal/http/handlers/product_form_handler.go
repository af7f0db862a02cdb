package handlers

import (
	"minimarket/internal/domain"
	applog "minimarket/internal/log"
	"minimarket/internal/session"
	"minimarket/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductFormHandler struct {
	Sessions *session.Store
}

// GET /crear, /producto/form — empty form, or prefilled when ?id= names an
// existing product.
func (h *ProductFormHandler) Form(c *fiber.Ctx) error {
	svc := catalog(c)

	p := domain.Product{}
	if id := validate.Int64(c.Query("id")); id > 0 {
		got, err := svc.GetProduct(id)
		if err != nil {
			return err
		}
		if got != nil {
			p = *got
		}
	}

	cats, err := svc.ListCategories()
	if err != nil {
		return err
	}
	return render(c, h.Sessions, "form", fiber.Map{
		"Product":    p,
		"Categories": cats,
		"Errors":     map[string]string{},
	})
}

// POST /crear — save on a clean entry, otherwise re-render the form with the
// field messages and whatever the user already typed.
func (h *ProductFormHandler) Save(c *fiber.Ctx) error {
	svc := catalog(c)

	f := validate.ProductForm{
		ID:          validate.Int64(c.FormValue("id")),
		Name:        c.FormValue("nombre"),
		CategoryID:  validate.Int64(c.FormValue("categoria")),
		Stock:       validate.Int(c.FormValue("stock")),
		PriceRaw:    c.FormValue("precio"),
		Description: c.FormValue("descripcion"),
		Code:        c.FormValue("codigo"),
		MadeOn:      c.FormValue("fecha_elaboracion"),
		ExpiresOn:   c.FormValue("fecha_caducidad"),
	}
	errs := validate.Product(&f)

	p := domain.Product{
		ID:          f.ID,
		Name:        f.Name,
		CategoryID:  f.CategoryID,
		Stock:       f.Stock,
		Price:       f.Price,
		Description: f.Description,
		Code:        f.Code,
		MadeOn:      f.MadeOn,
		ExpiresOn:   f.ExpiresOn,
		Active:      true,
	}

	if len(errs) > 0 {
		cats, err := svc.ListCategories()
		if err != nil {
			return err
		}
		return render(c, h.Sessions, "form", fiber.Map{
			"Product":    p,
			"Categories": cats,
			"Errors":     errs,
		})
	}

	if err := svc.SaveProduct(p); err != nil {
		return err
	}
	applog.Audit(c, "producto.save", map[string]any{"id": f.ID, "nombre": f.Name})
	return c.Redirect("/productos")
}
