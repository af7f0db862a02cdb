package invoice

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"minimarket/internal/cart"
)

// Render writes the purchase invoice for a cart snapshot to w: a centered
// title, one table row per line item and the Subtotal / IVA / Total block
// aligned right. Callers decide what to do with an empty cart; this always
// renders what it is given.
func Render(w io.Writer, c *cart.Cart) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // accented product names
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 255)
	pdf.CellFormat(0, 12, "Factura de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	headers := []string{"ID", "Producto", "Precio", "Cant.", "Subtotal"}
	widths := []float64{18, 82, 30, 20, 40}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(211, 211, 211)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range c.Items() {
		pdf.CellFormat(widths[0], 8, fmt.Sprintf("%d", it.Product.ID), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 8, tr(it.Product.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 8, fmt.Sprintf("$%.2f", it.Product.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 8, fmt.Sprintf("%d", it.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 8, fmt.Sprintf("$%.2f", it.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Subtotal: $%.2f", c.Subtotal()), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("IVA (15%%): $%.2f", c.Tax()), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, fmt.Sprintf("Total a Pagar: $%.2f", c.Total()), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}
