package validate

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Int64 parses a form field that should hold an identifier; anything
// unparseable becomes 0, which downstream code reads as "absent".
func Int64(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// Price accepts a comma or a dot as decimal separator.
func Price(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func Date(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ProductForm carries the raw form entry so a failed submission can be
// re-rendered exactly as the user typed it.
type ProductForm struct {
	ID          int64
	Name        string
	CategoryID  int64
	Stock       int
	PriceRaw    string
	Price       float64
	Description string
	Code        string
	MadeOn      string
	ExpiresOn   string
}

// Product collects field-level messages for the product form. An empty map
// means the entry can be saved. Keys match the form field names.
func Product(f *ProductForm) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		errs["nombre"] = "El nombre no puede estar vacío"
	}
	if f.CategoryID == 0 {
		errs["categoria"] = "La categoría no puede estar vacía"
	}
	if f.Stock <= 0 {
		errs["stock"] = "El stock debe ser mayor que 0"
	}

	if strings.TrimSpace(f.PriceRaw) == "" {
		errs["precio"] = "El precio no puede estar vacío"
	} else if v, ok := Price(f.PriceRaw); !ok {
		errs["precio"] = "El precio es un número inválido"
	} else if v <= 0 {
		errs["precio"] = "El precio debe ser mayor que 0"
	} else {
		f.Price = v
	}

	if strings.TrimSpace(f.Code) == "" {
		errs["codigo"] = "El código no puede estar vacío"
	}

	made, madeOK := time.Time{}, false
	if strings.TrimSpace(f.MadeOn) == "" {
		errs["fecha_elaboracion"] = "La fecha de elaboración no puede estar vacía"
	} else if made, madeOK = Date(f.MadeOn); !madeOK {
		errs["fecha_elaboracion"] = "La fecha de elaboración es inválida"
	}

	if strings.TrimSpace(f.ExpiresOn) == "" {
		errs["fecha_caducidad"] = "La fecha de caducidad no puede estar vacía"
	} else if exp, ok := Date(f.ExpiresOn); !ok {
		errs["fecha_caducidad"] = "La fecha de caducidad es inválida"
	} else if madeOK && exp.Before(made) {
		errs["fecha_caducidad"] = "La fecha de caducidad debe ser igual o posterior a la de elaboración"
	}

	return errs
}
