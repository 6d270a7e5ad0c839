package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/pkg/money"
)

func TestGenerateWorkbook(t *testing.T) {
	report := &entity.IncomeReport{
		From:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		ClinicIncome: money.MustParse("190.00"),
		StoreIncome:  money.MustParse("60.00"),
		CashIncome:   money.MustParse("150.00"),
		QRIncome:     money.MustParse("100.00"),
		Expenses:     money.MustParse("30.00"),
		Net:          money.MustParse("220.00"),
		Rows: []entity.IncomeReportRow{
			{Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), Origin: "clinic",
				Description: "Payment on quotation for Maria Lopez", Method: "Efectivo", Amount: money.MustParse("100.00")},
			{Date: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC), Origin: "expense",
				Description: "insumos", Method: "Efectivo", Amount: money.MustParse("-30.00")},
		},
	}

	data, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Summary" || sheets[1] != "Detail" {
		t.Fatalf("sheets = %v", sheets)
	}

	net, err := file.GetCellValue("Summary", "B8")
	if err != nil {
		t.Fatal(err)
	}
	if net != "220.00" {
		t.Errorf("summary net = %q, want 220.00", net)
	}

	desc, err := file.GetCellValue("Detail", "C2")
	if err != nil {
		t.Fatal(err)
	}
	if desc != "Payment on quotation for Maria Lopez" {
		t.Errorf("detail description = %q", desc)
	}
	amount, err := file.GetCellValue("Detail", "E3")
	if err != nil {
		t.Fatal(err)
	}
	if amount != "-30.00" {
		t.Errorf("expense amount = %q, want -30.00", amount)
	}
}
