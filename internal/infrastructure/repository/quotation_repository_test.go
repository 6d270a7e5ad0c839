package repository

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

func newBackend(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return rest.NewClient(rest.Options{BaseURL: server.URL, Logger: zerolog.Nop()})
}

func TestQuotationFindAllMapsWireFields(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cotizaciones" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 7, "fecha": "2025-03-15", "nombre_cliente": "Maria Lopez", "telefono": "70011223",
			 "estado": "pendiente", "total": "450.00", "monto_pendiente": "300.00", "usuario_id": 2},
			{"id": 8, "fecha": "2025-03-16T09:00:00Z", "nombre_cliente": "Jorge Rojas", "telefono": "",
			 "estado": "algo-raro", "total": "oops", "monto_pendiente": "", "usuario_id": 2}
		]`))
	})
	repo := NewQuotationRepository(client, zerolog.Nop())

	quotations, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(quotations) != 2 {
		t.Fatalf("got %d quotations, want 2", len(quotations))
	}

	first := quotations[0]
	if first.ID != 7 || first.ClientName != "Maria Lopez" || first.UserID != 2 {
		t.Errorf("header fields mismapped: %+v", first)
	}
	if first.Date.Format(rest.DateFormat) != "2025-03-15" {
		t.Errorf("date = %s", first.Date)
	}
	if first.Status != enum.QuotationPending {
		t.Errorf("status = %s", first.Status)
	}
	if money.Format(first.Total) != "450.00" || money.Format(first.PendingAmount) != "300.00" {
		t.Errorf("amounts mismapped: %s / %s", first.Total, first.PendingAmount)
	}
	if first.Services == nil || first.Payments == nil {
		t.Error("dependent collections not initialized empty")
	}

	// Malformed fields on a record degrade that field, never the record.
	second := quotations[1]
	if second.Status != enum.QuotationPending {
		t.Errorf("unknown estado coerced to %s, want pendiente", second.Status)
	}
	if !second.Total.IsZero() || !second.PendingAmount.IsZero() {
		t.Errorf("malformed amounts not zeroed: %s / %s", second.Total, second.PendingAmount)
	}
	if second.Date.Format(rest.DateFormat) != "2025-03-16" {
		t.Errorf("timestamp date = %s", second.Date)
	}
}

func TestQuotationSoftDeletePatchesStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	})
	repo := NewQuotationRepository(client, zerolog.Nop())

	if err := repo.SoftDelete(context.Background(), 7); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if gotMethod != http.MethodPatch || gotPath != "/cotizaciones/7" {
		t.Errorf("request = %s %s, want PATCH /cotizaciones/7", gotMethod, gotPath)
	}
	if gotBody["estado"] != "eliminado" {
		t.Errorf("body estado = %q, want eliminado", gotBody["estado"])
	}
}

func TestQuotationCreateSendsWireShape(t *testing.T) {
	var got map[string]interface{}
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &got)
		w.Write([]byte(`{"id": 10, "fecha": "2025-04-01", "nombre_cliente": "Maria Lopez",
			"estado": "pendiente", "total": "200.00", "monto_pendiente": "200.00", "usuario_id": 1}`))
	})
	repo := NewQuotationRepository(client, zerolog.Nop())

	input := &domainRepo.CreateQuotationInput{
		Date:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		ClientName: "Maria Lopez",
		Phone:      "70011223",
		Services: []domainRepo.QuotationServiceInput{{
			ServiceID:   5,
			SpecialtyID: 2,
			Price:       money.MustParse("200.00"),
			Commissions: []domainRepo.CommissionInput{{DoctorID: 3, Percentage: money.MustParse("40")}},
		}},
	}
	created, err := repo.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("created id = %d", created.ID)
	}

	if got["nombre_cliente"] != "Maria Lopez" || got["fecha"] != "2025-04-01" {
		t.Errorf("header wire fields: %+v", got)
	}
	servicios, ok := got["servicios"].([]interface{})
	if !ok || len(servicios) != 1 {
		t.Fatalf("servicios = %+v", got["servicios"])
	}
	line := servicios[0].(map[string]interface{})
	if line["precio"] != "200.00" {
		t.Errorf("precio = %v, want string 200.00", line["precio"])
	}
	comisiones := line["comisiones"].([]interface{})
	first := comisiones[0].(map[string]interface{})
	if first["doctor_id"] != float64(3) || first["porcentaje"] != "40.00" {
		t.Errorf("comisiones wire = %+v", first)
	}
}

func TestPaymentListMapsCommissionMap(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cotizaciones/7/pagos" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 1, "fecha": "2025-03-20", "monto": "100.00", "metodo_pago": "Mixto",
			 "monto_efectivo": "60.00", "monto_qr": "40.00",
			 "comisiones": {"3": "20.00", "bogus": "5.00"}}
		]`))
	})
	repo := NewQuotationPaymentRepository(client, zerolog.Nop())

	payments, err := repo.ListByQuotation(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListByQuotation: %v", err)
	}
	if len(payments) != 1 {
		t.Fatalf("got %d payments", len(payments))
	}
	p := payments[0]
	if p.Method != enum.PaymentMixed {
		t.Errorf("method = %s", p.Method)
	}
	if money.Format(p.CashAmount) != "60.00" || money.Format(p.QRAmount) != "40.00" {
		t.Errorf("split = %s / %s", p.CashAmount, p.QRAmount)
	}
	// The unparseable doctor key is dropped, the valid one survives.
	if len(p.DoctorCommissions) != 1 {
		t.Fatalf("commission map = %+v", p.DoctorCommissions)
	}
	if money.Format(p.DoctorCommissions[3]) != "20.00" {
		t.Errorf("commission for doctor 3 = %s", p.DoctorCommissions[3])
	}
}

func TestCashBoxCurrentNotOpen(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "no hay caja abierta"}`))
	})
	repo := NewCashBoxRepository(client, zerolog.Nop())

	box, err := repo.Current(context.Background())
	if err != nil {
		t.Fatalf("Current on 404: %v", err)
	}
	if box != nil {
		t.Errorf("box = %+v, want nil", box)
	}
}

func TestCashBoxCloseSendsFlag(t *testing.T) {
	var gotBody map[string]int
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusNoContent)
	})
	repo := NewCashBoxRepository(client, zerolog.Nop())

	if err := repo.Close(context.Background(), 4); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if gotBody["estado"] != 0 {
		t.Errorf("estado flag = %d, want 0", gotBody["estado"])
	}
}
