package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/apperror"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const (
	cashBoxResource  = "cash boxes"
	movementResource = "movements"
	expenseResource  = "expenses"
)

type cashBoxRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewCashBoxRepository creates the REST-backed cash box resource client.
func NewCashBoxRepository(client *rest.Client, log zerolog.Logger) domainRepo.CashBoxRepository {
	return &cashBoxRepository{client: client, log: log}
}

// cashBoxWire is the backend shape of a cash register session. Estado is a
// short integer flag (1 open, 0 closed).
type cashBoxWire struct {
	ID            int64      `json:"id"`
	FechaApertura rest.Date  `json:"fecha_apertura"`
	FechaCierre   *rest.Date `json:"fecha_cierre,omitempty"`
	MontoInicial  string     `json:"monto_inicial"`
	TotalEfectivo string     `json:"total_efectivo"`
	TotalQR       string     `json:"total_qr"`
	Estado        int        `json:"estado"`
}

func (r *cashBoxRepository) FindAll(ctx context.Context) ([]entity.CashBox, error) {
	var rows []cashBoxWire
	if err := r.client.Get(ctx, "/cajas", &rows); err != nil {
		return nil, rest.FetchError(err, cashBoxResource)
	}
	boxes := make([]entity.CashBox, 0, len(rows))
	for _, row := range rows {
		boxes = append(boxes, r.toEntity(row))
	}
	return boxes, nil
}

func (r *cashBoxRepository) FindByID(ctx context.Context, id int64) (*entity.CashBox, error) {
	var row cashBoxWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cajas/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, cashBoxResource)
	}
	box := r.toEntity(row)
	return &box, nil
}

func (r *cashBoxRepository) Current(ctx context.Context) (*entity.CashBox, error) {
	var row cashBoxWire
	err := r.client.Get(ctx, "/cajas/actual", &row)
	if err != nil {
		if appErr := apperror.GetAppError(err); appErr.Code == 404 {
			return nil, nil
		}
		return nil, rest.FetchError(err, cashBoxResource)
	}
	box := r.toEntity(row)
	return &box, nil
}

func (r *cashBoxRepository) Open(ctx context.Context, initialAmount decimal.Decimal) (*entity.CashBox, error) {
	body := map[string]string{"monto_inicial": money.Format(initialAmount)}
	var row cashBoxWire
	if err := r.client.Post(ctx, "/cajas", body, &row); err != nil {
		return nil, rest.FetchError(err, cashBoxResource)
	}
	box := r.toEntity(row)
	return &box, nil
}

func (r *cashBoxRepository) Close(ctx context.Context, id int64) error {
	body := map[string]int{"estado": int(enum.CashBoxClosed)}
	if err := r.client.Patch(ctx, fmt.Sprintf("/cajas/%d", id), body, nil); err != nil {
		return rest.FetchError(err, cashBoxResource)
	}
	return nil
}

func (r *cashBoxRepository) toEntity(row cashBoxWire) entity.CashBox {
	status, ok := enum.ParseCashBoxStatus(row.Estado)
	if !ok {
		rest.CoercedEnum(r.log, cashBoxResource, "estado", fmt.Sprintf("%d", row.Estado))
	}
	var closedAt *time.Time
	if row.FechaCierre != nil && !row.FechaCierre.IsZero() {
		t := row.FechaCierre.Time
		closedAt = &t
	}
	return entity.CashBox{
		ID:            row.ID,
		OpenedAt:      row.FechaApertura.Time,
		ClosedAt:      closedAt,
		InitialAmount: rest.Amount(r.log, cashBoxResource, "monto_inicial", row.MontoInicial),
		CashTotal:     rest.Amount(r.log, cashBoxResource, "total_efectivo", row.TotalEfectivo),
		QRTotal:       rest.Amount(r.log, cashBoxResource, "total_qr", row.TotalQR),
		Status:        status,
		Movements:     []entity.Movement{},
		Expenses:      []entity.Expense{},
	}
}

type movementRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewMovementRepository creates the sub-resource fetcher and writer for a
// cash box's ledger.
func NewMovementRepository(client *rest.Client, log zerolog.Logger) domainRepo.MovementRepository {
	return &movementRepository{client: client, log: log}
}

// movementWire is the backend shape of a ledger entry.
type movementWire struct {
	ID          int64     `json:"id"`
	CajaID      int64     `json:"caja_id"`
	Tipo        string    `json:"tipo"`
	MetodoPago  string    `json:"metodo_pago"`
	Monto       string    `json:"monto"`
	Descripcion string    `json:"descripcion"`
	Fecha       rest.Date `json:"fecha"`
}

func (r *movementRepository) ListByCashBox(ctx context.Context, cashBoxID int64) ([]entity.Movement, error) {
	var rows []movementWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cajas/%d/movimientos", cashBoxID), &rows); err != nil {
		return nil, rest.FetchError(err, movementResource)
	}
	movements := make([]entity.Movement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, r.toEntity(row))
	}
	return movements, nil
}

func (r *movementRepository) Create(ctx context.Context, input *domainRepo.MovementInput) (*entity.Movement, error) {
	body := map[string]string{
		"tipo":        string(input.Kind),
		"metodo_pago": string(input.Method),
		"monto":       money.Format(input.Amount),
		"descripcion": input.Description,
	}
	var row movementWire
	if err := r.client.Post(ctx, fmt.Sprintf("/cajas/%d/movimientos", input.CashBoxID), body, &row); err != nil {
		return nil, rest.FetchError(err, movementResource)
	}
	movement := r.toEntity(row)
	return &movement, nil
}

func (r *movementRepository) toEntity(row movementWire) entity.Movement {
	kind, ok := enum.ParseMovementKind(row.Tipo)
	if !ok {
		rest.CoercedEnum(r.log, movementResource, "tipo", row.Tipo)
	}
	method, ok := enum.ParsePaymentMethod(row.MetodoPago)
	if !ok {
		rest.CoercedEnum(r.log, movementResource, "metodo_pago", row.MetodoPago)
	}
	return entity.Movement{
		ID:          row.ID,
		CashBoxID:   row.CajaID,
		Kind:        kind,
		Method:      method,
		Amount:      rest.Amount(r.log, movementResource, "monto", row.Monto),
		Description: row.Descripcion,
		Date:        row.Fecha.Time,
	}
}

type expenseRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewExpenseRepository creates the sub-resource fetcher and writer for a cash
// box's expenses.
func NewExpenseRepository(client *rest.Client, log zerolog.Logger) domainRepo.ExpenseRepository {
	return &expenseRepository{client: client, log: log}
}

// expenseWire is the backend shape of an expense.
type expenseWire struct {
	ID          int64     `json:"id"`
	CajaID      int64     `json:"caja_id"`
	Monto       string    `json:"monto"`
	Descripcion string    `json:"descripcion"`
	Fecha       rest.Date `json:"fecha"`
}

func (r *expenseRepository) ListByCashBox(ctx context.Context, cashBoxID int64) ([]entity.Expense, error) {
	var rows []expenseWire
	if err := r.client.Get(ctx, fmt.Sprintf("/cajas/%d/gastos", cashBoxID), &rows); err != nil {
		return nil, rest.FetchError(err, expenseResource)
	}
	expenses := make([]entity.Expense, 0, len(rows))
	for _, row := range rows {
		expenses = append(expenses, r.toEntity(row))
	}
	return expenses, nil
}

func (r *expenseRepository) Create(ctx context.Context, input *domainRepo.ExpenseInput) (*entity.Expense, error) {
	body := map[string]string{
		"monto":       money.Format(input.Amount),
		"descripcion": input.Description,
	}
	var row expenseWire
	if err := r.client.Post(ctx, fmt.Sprintf("/cajas/%d/gastos", input.CashBoxID), body, &row); err != nil {
		return nil, rest.FetchError(err, expenseResource)
	}
	expense := r.toEntity(row)
	return &expense, nil
}

func (r *expenseRepository) toEntity(row expenseWire) entity.Expense {
	return entity.Expense{
		ID:          row.ID,
		CashBoxID:   row.CajaID,
		Amount:      rest.Amount(r.log, expenseResource, "monto", row.Monto),
		Description: row.Descripcion,
		Date:        row.Fecha.Time,
	}
}
