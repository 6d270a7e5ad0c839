package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const paymentResource = "payments"

type quotationPaymentRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewQuotationPaymentRepository creates the sub-resource fetcher and writer
// for a quotation's payments.
func NewQuotationPaymentRepository(client *rest.Client, log zerolog.Logger) domainRepo.QuotationPaymentRepository {
	return &quotationPaymentRepository{client: client, log: log}
}

// paymentWire is the backend shape of a registered payment. Comisiones maps
// doctor IDs (as JSON object keys, hence strings) to settled amounts.
type paymentWire struct {
	ID            int64             `json:"id"`
	Fecha         rest.Date         `json:"fecha"`
	Monto         string            `json:"monto"`
	MetodoPago    string            `json:"metodo_pago"`
	MontoEfectivo string            `json:"monto_efectivo"`
	MontoQR       string            `json:"monto_qr"`
	Comisiones    map[string]string `json:"comisiones,omitempty"`
}

type createPaymentWire struct {
	Fecha         rest.Date         `json:"fecha"`
	Monto         string            `json:"monto"`
	MetodoPago    string            `json:"metodo_pago"`
	MontoEfectivo string            `json:"monto_efectivo,omitempty"`
	MontoQR       string            `json:"monto_qr,omitempty"`
	Comisiones    map[string]string `json:"comisiones,omitempty"`
}

func (r *quotationPaymentRepository) ListByQuotation(ctx context.Context, quotationID int64) ([]entity.QuotationPayment, error) {
	var rows []paymentWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cotizaciones/%d/pagos", quotationID), &rows); err != nil {
		return nil, rest.FetchError(err, paymentResource)
	}
	payments := make([]entity.QuotationPayment, 0, len(rows))
	for _, row := range rows {
		payments = append(payments, r.toEntity(row))
	}
	return payments, nil
}

func (r *quotationPaymentRepository) Create(ctx context.Context, quotationID int64, input *domainRepo.RegisterPaymentInput) error {
	body := createPaymentWire{
		Fecha:      rest.Date{Time: input.Date},
		Monto:      money.Format(input.Amount),
		MetodoPago: string(input.Method),
	}
	if input.Method == enum.PaymentMixed {
		body.MontoEfectivo = money.Format(input.CashAmount)
		body.MontoQR = money.Format(input.QRAmount)
	}
	if len(input.DoctorCommissions) > 0 {
		body.Comisiones = make(map[string]string, len(input.DoctorCommissions))
		for doctorID, amount := range input.DoctorCommissions {
			body.Comisiones[strconv.FormatInt(doctorID, 10)] = money.Format(amount)
		}
	}
	if err := r.client.Post(ctx, fmt.Sprintf("/cotizaciones/%d/pagos", quotationID), body, nil); err != nil {
		return rest.FetchError(err, paymentResource)
	}
	return nil
}

func (r *quotationPaymentRepository) toEntity(row paymentWire) entity.QuotationPayment {
	method, ok := enum.ParsePaymentMethod(row.MetodoPago)
	if !ok {
		rest.CoercedEnum(r.log, paymentResource, "metodo_pago", row.MetodoPago)
	}
	payment := entity.QuotationPayment{
		ID:         row.ID,
		Date:       row.Fecha.Time,
		Amount:     rest.Amount(r.log, paymentResource, "monto", row.Monto),
		Method:     method,
		CashAmount: rest.Amount(r.log, paymentResource, "monto_efectivo", row.MontoEfectivo),
		QRAmount:   rest.Amount(r.log, paymentResource, "monto_qr", row.MontoQR),
	}
	if len(row.Comisiones) > 0 {
		payment.DoctorCommissions = make(map[int64]decimal.Decimal, len(row.Comisiones))
		for rawID, rawAmount := range row.Comisiones {
			doctorID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil {
				r.log.Warn().Str("resource", paymentResource).Str("doctor_id", rawID).
					Msg("malformed doctor id in commission map, entry dropped")
				continue
			}
			payment.DoctorCommissions[doctorID] = rest.Amount(r.log, paymentResource, "comisiones", rawAmount)
		}
	}
	return payment
}
