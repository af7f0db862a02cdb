package invoice_test

import (
	"bytes"
	"testing"

	"minimarket/internal/cart"
	"minimarket/internal/domain"
	"minimarket/internal/invoice"
)

func TestRender_ProducesPDF(t *testing.T) {
	c := cart.New()
	_ = c.AddItem(domain.Product{ID: 1, Name: "Leche Entera 1L", Price: 1.25}, 2)
	_ = c.AddItem(domain.Product{ID: 3, Name: "Jugo de Naranja 1L", Price: 2.10}, 1)

	var buf bytes.Buffer
	if err := invoice.Render(&buf, c); err != nil {
		t.Fatal(err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:min(8, len(out))])
	}
	if len(out) < 500 {
		t.Fatalf("suspiciously small document: %d bytes", len(out))
	}
}
