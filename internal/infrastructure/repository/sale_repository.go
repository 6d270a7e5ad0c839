package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	"github.com/dentastore/backoffice-client/internal/domain/enum"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const (
	saleResource     = "sales"
	saleItemResource = "sale items"
)

type saleRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewSaleRepository creates the REST-backed sale resource client.
func NewSaleRepository(client *rest.Client, log zerolog.Logger) domainRepo.SaleRepository {
	return &saleRepository{client: client, log: log}
}

// saleWire is the backend shape of a point-of-sale transaction header.
type saleWire struct {
	ID         int64     `json:"id"`
	Fecha      rest.Date `json:"fecha"`
	Total      string    `json:"total"`
	MetodoPago string    `json:"metodo_pago"`
	UsuarioID  int64     `json:"usuario_id"`
}

type saleInputWire struct {
	Fecha      rest.Date           `json:"fecha"`
	MetodoPago string              `json:"metodo_pago"`
	Items      []saleItemInputWire `json:"items"`
}

type saleItemInputWire struct {
	ProductoID int64  `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
	Precio     string `json:"precio"`
}

func (r *saleRepository) FindAll(ctx context.Context) ([]entity.Sale, error) {
	var rows []saleWire
	if err := r.client.Get(ctx, "/ventas", &rows); err != nil {
		return nil, rest.FetchError(err, saleResource)
	}
	sales := make([]entity.Sale, 0, len(rows))
	for _, row := range rows {
		sales = append(sales, r.toEntity(row))
	}
	return sales, nil
}

func (r *saleRepository) FindByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var row saleWire
	if err := r.client.Get(ctx, fmt.Sprintf("/ventas/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, saleResource)
	}
	sale := r.toEntity(row)
	return &sale, nil
}

func (r *saleRepository) Create(ctx context.Context, input *domainRepo.SaleInput) (*entity.Sale, error) {
	body := saleInputWire{
		Fecha:      rest.Date{Time: input.Date},
		MetodoPago: string(input.Method),
		Items:      make([]saleItemInputWire, 0, len(input.Items)),
	}
	for _, item := range input.Items {
		body.Items = append(body.Items, saleItemInputWire{
			ProductoID: item.ProductID,
			Cantidad:   item.Quantity,
			Precio:     money.Format(item.Price),
		})
	}
	var row saleWire
	if err := r.client.Post(ctx, "/ventas", body, &row); err != nil {
		return nil, rest.FetchError(err, saleResource)
	}
	sale := r.toEntity(row)
	return &sale, nil
}

func (r *saleRepository) SoftDelete(ctx context.Context, id int64) error {
	body := map[string]string{"estado": "eliminado"}
	if err := r.client.Patch(ctx, fmt.Sprintf("/ventas/%d", id), body, nil); err != nil {
		return rest.FetchError(err, saleResource)
	}
	return nil
}

func (r *saleRepository) toEntity(row saleWire) entity.Sale {
	method, ok := enum.ParsePaymentMethod(row.MetodoPago)
	if !ok {
		rest.CoercedEnum(r.log, saleResource, "metodo_pago", row.MetodoPago)
	}
	return entity.Sale{
		ID:     row.ID,
		Date:   row.Fecha.Time,
		Total:  rest.Amount(r.log, saleResource, "total", row.Total),
		Method: method,
		UserID: row.UsuarioID,
		Items:  []entity.SaleItem{},
	}
}

type saleItemRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewSaleItemRepository creates the sub-resource fetcher for a sale's product
// lines.
func NewSaleItemRepository(client *rest.Client, log zerolog.Logger) domainRepo.SaleItemRepository {
	return &saleItemRepository{client: client, log: log}
}

// saleItemWire is the backend shape of a sale line.
type saleItemWire struct {
	ID         int64  `json:"id"`
	ProductoID int64  `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
	Precio     string `json:"precio"`
}

func (r *saleItemRepository) ListBySale(ctx context.Context, saleID int64) ([]entity.SaleItem, error) {
	var rows []saleItemWire
	if err := r.client.Get(ctx, fmt.Sprintf("/ventas/%d/items", saleID), &rows); err != nil {
		return nil, rest.FetchError(err, saleItemResource)
	}
	items := make([]entity.SaleItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entity.SaleItem{
			ID:        row.ID,
			ProductID: row.ProductoID,
			Quantity:  row.Cantidad,
			Price:     rest.Amount(r.log, saleItemResource, "precio", row.Precio),
		})
	}
	return items, nil
}
