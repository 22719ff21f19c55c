package billing

import (
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/PoonjothiV/grocerywebsites/models"
)

// Table geometry, in mm on an A4 portrait page.
const (
	tableLeft  = 14.0
	tableWidth = 180.0
	rowHeight  = 10.0
	qtyCol     = 100.0
	priceCol   = 140.0
	totalCol   = 180.0
	pageBreakY = 270.0
)

// Renderer writes a Bill as a PDF. Currency is the display prefix used on
// every amount.
type Renderer struct {
	Currency string
}

// Render writes the receipt to w. A bill with no items still renders: the
// table is simply empty above the summary rows.
func (r *Renderer) Render(w io.Writer, bill models.Bill) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(tableLeft, 20, "Order Bill")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(tableLeft, 26, "Customer: "+bill.CustomerName)
	pdf.Text(tableLeft+tableWidth-60, 26, "Bill No: "+shortNumber(bill.Number))

	y := r.tableHeader(pdf, 35)

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	for _, item := range bill.Items {
		if y > pageBreakY {
			pdf.AddPage()
			y = r.tableHeader(pdf, 20)
			pdf.SetFont("Helvetica", "", 12)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetFillColor(230, 240, 255)
		pdf.Rect(tableLeft, y-5, tableWidth, rowHeight, "F")
		pdf.Text(tableLeft, y, item.Product.Name)
		pdf.Text(qtyCol, y, strconv.Itoa(item.Quantity))
		pdf.Text(priceCol, y, r.Currency+item.Product.OfferPrice.StringFixed(2))
		pdf.Text(totalCol, y, r.Currency+item.LineTotal.StringFixed(2))
		pdf.SetLineWidth(0.5)
		pdf.Rect(tableLeft, y-5, tableWidth, rowHeight, "D")
		y += rowHeight
	}

	y += rowHeight
	y = r.summaryRow(pdf, y, "Date: "+bill.GeneratedAt.Format("02/01/2006"))
	y = r.summaryRow(pdf, y, "Shipping Address: "+bill.ShippingAddress)
	y = r.summaryRow(pdf, y, "Payment: "+string(bill.PaymentMethod))
	y = r.summaryRow(pdf, y, "Subtotal: "+r.Currency+bill.Subtotal.StringFixed(2))
	y = r.summaryRow(pdf, y, "Tax (2%): "+r.Currency+bill.Tax.StringFixed(2))
	r.summaryRow(pdf, y, "Total: "+r.Currency+bill.GrandTotal.StringFixed(2))

	return pdf.Output(w)
}

func (r *Renderer) tableHeader(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFillColor(128, 0, 128)
	pdf.Rect(tableLeft, y-5, tableWidth, rowHeight, "F")
	pdf.Text(tableLeft, y, "Product")
	pdf.Text(qtyCol, y, "Qty")
	pdf.Text(priceCol, y, "Price")
	pdf.Text(totalCol, y, "Total")
	return y + rowHeight
}

func (r *Renderer) summaryRow(pdf *gofpdf.Fpdf, y float64, text string) float64 {
	if y > pageBreakY {
		pdf.AddPage()
		y = 20
	}
	pdf.SetFillColor(230, 240, 255)
	pdf.Rect(tableLeft, y-5, tableWidth, rowHeight, "F")
	pdf.Text(tableLeft, y, text)
	return y + rowHeight
}

// shortNumber trims a uuid to its first block for display.
func shortNumber(number string) string {
	if len(number) > 8 {
		return number[:8]
	}
	return number
}
