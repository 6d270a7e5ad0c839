package enum

import "testing"

func TestParseQuotationStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   QuotationStatus
		wantOK bool
	}{
		{raw: "pendiente", want: QuotationPending, wantOK: true},
		{raw: "completada", want: QuotationCompleted, wantOK: true},
		{raw: "eliminado", want: QuotationDeleted, wantOK: true},
		{raw: "cancelada", want: QuotationPending, wantOK: false},
		{raw: "", want: QuotationPending, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParseQuotationStatus(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseQuotationStatus(%q) = (%s, %v), want (%s, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestQuotationStatusIsDeleted(t *testing.T) {
	if !QuotationDeleted.IsDeleted() {
		t.Error("eliminado not reported as deleted")
	}
	if QuotationPending.IsDeleted() || QuotationCompleted.IsDeleted() {
		t.Error("live status reported as deleted")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		raw    string
		want   PaymentMethod
		wantOK bool
	}{
		{raw: "Efectivo", want: PaymentCash, wantOK: true},
		{raw: "QR", want: PaymentQR, wantOK: true},
		{raw: "Mixto", want: PaymentMixed, wantOK: true},
		{raw: "Tarjeta", want: PaymentCash, wantOK: false},
		{raw: "efectivo", want: PaymentCash, wantOK: false},
	}
	for _, tt := range tests {
		got, ok := ParsePaymentMethod(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePaymentMethod(%q) = (%s, %v), want (%s, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseUserRole(t *testing.T) {
	if got, ok := ParseUserRole("admin"); got != RoleAdmin || !ok {
		t.Errorf("ParseUserRole(admin) = (%s, %v)", got, ok)
	}
	// Unknown roles fall back to the least-privileged role.
	if got, ok := ParseUserRole("superuser"); got != RoleAssistant || ok {
		t.Errorf("ParseUserRole(superuser) = (%s, %v), want (asistente, false)", got, ok)
	}
}

func TestParseSalaryType(t *testing.T) {
	if got, ok := ParseSalaryType("Comision"); got != SalaryCommission || !ok {
		t.Errorf("ParseSalaryType(Comision) = (%s, %v)", got, ok)
	}
	if got, ok := ParseSalaryType("Honorario"); got != SalarySalaried || ok {
		t.Errorf("ParseSalaryType(Honorario) = (%s, %v), want (Sueldo, false)", got, ok)
	}
}

func TestParseMovementKind(t *testing.T) {
	if got, ok := ParseMovementKind("egreso"); got != MovementExpense || !ok {
		t.Errorf("ParseMovementKind(egreso) = (%s, %v)", got, ok)
	}
	if got, ok := ParseMovementKind("ajuste"); got != MovementIncome || ok {
		t.Errorf("ParseMovementKind(ajuste) = (%s, %v), want (ingreso, false)", got, ok)
	}
}

func TestParseCashBoxStatus(t *testing.T) {
	if got, ok := ParseCashBoxStatus(1); got != CashBoxOpen || !ok {
		t.Errorf("ParseCashBoxStatus(1) = (%s, %v)", got, ok)
	}
	if got, ok := ParseCashBoxStatus(7); got != CashBoxClosed || ok {
		t.Errorf("ParseCashBoxStatus(7) = (%s, %v), want (cerrada, false)", got, ok)
	}
}
