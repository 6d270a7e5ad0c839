package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

// Generator renders quotation detail sheets as PDFs.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate lays out the quotation header, its service lines and its payment
// history on an A4 portrait page.
func (g *Generator) Generate(quotation *entity.Quotation) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Quotation", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("No. %d — %s", quotation.ID, quotation.Date.Format(rest.DateFormat)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Client: %s (%s)", quotation.ClientName, quotation.Phone), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", quotation.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Services", "", 1, "L", false, 0, "")
	drawRow(pdf, []string{"Service", "Specialty", "Price"}, true)
	for _, svc := range quotation.Services {
		drawRow(pdf, []string{
			fmt.Sprintf("%d", svc.ServiceID),
			fmt.Sprintf("%d", svc.SpecialtyID),
			money.Format(svc.Price),
		}, false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Payments", "", 1, "L", false, 0, "")
	drawRow(pdf, []string{"Date", "Method", "Amount"}, true)
	for _, p := range quotation.Payments {
		drawRow(pdf, []string{
			p.Date.Format(rest.DateFormat),
			p.Method.String(),
			money.Format(p.Amount),
		}, false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Total: "+money.Format(quotation.Total), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, "Pending: "+money.Format(quotation.PendingAmount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawRow(pdf *gofpdf.Fpdf, cells []string, header bool) {
	widths := []float64{70, 55, 55}
	if header {
		pdf.SetFont("Helvetica", "B", 10)
	} else {
		pdf.SetFont("Helvetica", "", 10)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}
