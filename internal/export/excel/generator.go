package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

// Generator renders income reports as Excel workbooks.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes one summary sheet and one detail sheet.
func (g *Generator) Generate(report *entity.IncomeReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	detailSheet := "Detail"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	if err := g.writeDetail(file, detailSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report *entity.IncomeReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Period start")
	set("B1", report.From.Format(rest.DateFormat))
	set("A2", "Period end")
	set("B2", report.To.Format(rest.DateFormat))
	set("A3", "Clinic income")
	set("B3", money.Format(report.ClinicIncome))
	set("A4", "Store income")
	set("B4", money.Format(report.StoreIncome))
	set("A5", "Cash income")
	set("B5", money.Format(report.CashIncome))
	set("A6", "QR income")
	set("B6", money.Format(report.QRIncome))
	set("A7", "Expenses")
	set("B7", money.Format(report.Expenses))
	set("A8", "Net")
	set("B8", money.Format(report.Net))

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, report *entity.IncomeReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Date")
	set("B1", "Origin")
	set("C1", "Description")
	set("D1", "Method")
	set("E1", "Amount")

	for i, row := range report.Rows {
		line := i + 2
		set(fmt.Sprintf("A%d", line), row.Date.Format(rest.DateFormat))
		set(fmt.Sprintf("B%d", line), row.Origin)
		set(fmt.Sprintf("C%d", line), row.Description)
		set(fmt.Sprintf("D%d", line), row.Method)
		set(fmt.Sprintf("E%d", line), money.Format(row.Amount))
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "C", "C", 45)
	_ = file.SetColWidth(sheet, "E", "E", 14)
	return nil
}
