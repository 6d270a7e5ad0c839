package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeReport is the aggregated income picture for a period, assembled from
// quotation payments, store sales and expenses.
type IncomeReport struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`

	ClinicIncome decimal.Decimal `json:"clinicIncome"`
	StoreIncome  decimal.Decimal `json:"storeIncome"`
	CashIncome   decimal.Decimal `json:"cashIncome"`
	QRIncome     decimal.Decimal `json:"qrIncome"`
	Expenses     decimal.Decimal `json:"expenses"`
	Net          decimal.Decimal `json:"net"`

	Rows []IncomeReportRow `json:"rows"`
}

// IncomeReportRow is one transaction line in the report detail.
type IncomeReportRow struct {
	Date        time.Time       `json:"date"`
	Origin      string          `json:"origin"`
	Description string          `json:"description"`
	Method      string          `json:"paymentMethod"`
	Amount      decimal.Decimal `json:"amount"`
}
