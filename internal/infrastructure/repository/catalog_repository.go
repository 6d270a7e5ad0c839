package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dentastore/backoffice-client/internal/domain/entity"
	domainRepo "github.com/dentastore/backoffice-client/internal/domain/repository"
	"github.com/dentastore/backoffice-client/internal/infrastructure/rest"
	"github.com/dentastore/backoffice-client/pkg/money"
)

const (
	serviceResource = "services"
	productResource = "products"
)

type serviceRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewServiceRepository creates the REST-backed clinical service catalog
// client.
func NewServiceRepository(client *rest.Client, log zerolog.Logger) domainRepo.ServiceRepository {
	return &serviceRepository{client: client, log: log}
}

// serviceWire is the backend shape of a catalog service.
type serviceWire struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	EspecialidadID int64  `json:"especialidad_id"`
	Precio         string `json:"precio"`
}

type serviceInputWire struct {
	Nombre         string `json:"nombre"`
	EspecialidadID int64  `json:"especialidad_id"`
	Precio         string `json:"precio"`
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	var rows []serviceWire
	if err := r.client.Get(ctx, "/servicios", &rows); err != nil {
		return nil, rest.FetchError(err, serviceResource)
	}
	services := make([]entity.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, r.toEntity(row))
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	var row serviceWire
	if err := r.client.Get(ctx, fmt.Sprintf("/servicios/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, serviceResource)
	}
	service := r.toEntity(row)
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, input *domainRepo.ServiceInput) (*entity.Service, error) {
	var row serviceWire
	if err := r.client.Post(ctx, "/servicios", toServiceWire(input), &row); err != nil {
		return nil, rest.FetchError(err, serviceResource)
	}
	service := r.toEntity(row)
	return &service, nil
}

func (r *serviceRepository) Update(ctx context.Context, id int64, input *domainRepo.ServiceInput) (*entity.Service, error) {
	var row serviceWire
	if err := r.client.Put(ctx, fmt.Sprintf("/servicios/%d", id), toServiceWire(input), &row); err != nil {
		return nil, rest.FetchError(err, serviceResource)
	}
	service := r.toEntity(row)
	return &service, nil
}

func (r *serviceRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/servicios/%d", id)); err != nil {
		return rest.FetchError(err, serviceResource)
	}
	return nil
}

func toServiceWire(input *domainRepo.ServiceInput) serviceInputWire {
	return serviceInputWire{
		Nombre:         input.Name,
		EspecialidadID: input.SpecialtyID,
		Precio:         money.Format(input.Price),
	}
}

func (r *serviceRepository) toEntity(row serviceWire) entity.Service {
	return entity.Service{
		ID:          row.ID,
		Name:        row.Nombre,
		SpecialtyID: row.EspecialidadID,
		Price:       rest.Amount(r.log, serviceResource, "precio", row.Precio),
	}
}

type productRepository struct {
	client *rest.Client
	log    zerolog.Logger
}

// NewProductRepository creates the REST-backed apparel catalog client.
func NewProductRepository(client *rest.Client, log zerolog.Logger) domainRepo.ProductRepository {
	return &productRepository{client: client, log: log}
}

// productWire is the backend shape of an apparel item.
type productWire struct {
	ID           int64  `json:"id"`
	Nombre       string `json:"nombre"`
	Codigo       string `json:"codigo"`
	PrecioVenta  string `json:"precio_venta"`
	PrecioCompra string `json:"precio_compra"`
	Stock        int    `json:"stock"`
	Talla        string `json:"talla"`
	Color        string `json:"color"`
}

type productInputWire struct {
	Nombre       string `json:"nombre"`
	Codigo       string `json:"codigo"`
	PrecioVenta  string `json:"precio_venta"`
	PrecioCompra string `json:"precio_compra"`
	Stock        int    `json:"stock"`
	Talla        string `json:"talla,omitempty"`
	Color        string `json:"color,omitempty"`
}

func (r *productRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var rows []productWire
	if err := r.client.Get(ctx, "/productos", &rows); err != nil {
		return nil, rest.FetchError(err, productResource)
	}
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, r.toEntity(row))
	}
	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var row productWire
	if err := r.client.Get(ctx, fmt.Sprintf("/productos/%d", id), &row); err != nil {
		return nil, rest.FetchError(err, productResource)
	}
	product := r.toEntity(row)
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, input *domainRepo.ProductInput) (*entity.Product, error) {
	var row productWire
	if err := r.client.Post(ctx, "/productos", toProductWire(input), &row); err != nil {
		return nil, rest.FetchError(err, productResource)
	}
	product := r.toEntity(row)
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, input *domainRepo.ProductInput) (*entity.Product, error) {
	var row productWire
	if err := r.client.Put(ctx, fmt.Sprintf("/productos/%d", id), toProductWire(input), &row); err != nil {
		return nil, rest.FetchError(err, productResource)
	}
	product := r.toEntity(row)
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, fmt.Sprintf("/productos/%d", id)); err != nil {
		return rest.FetchError(err, productResource)
	}
	return nil
}

func toProductWire(input *domainRepo.ProductInput) productInputWire {
	return productInputWire{
		Nombre:       input.Name,
		Codigo:       input.Code,
		PrecioVenta:  money.Format(input.SalePrice),
		PrecioCompra: money.Format(input.PurchasePrice),
		Stock:        input.Stock,
		Talla:        input.Size,
		Color:        input.Color,
	}
}

func (r *productRepository) toEntity(row productWire) entity.Product {
	return entity.Product{
		ID:            row.ID,
		Name:          row.Nombre,
		Code:          row.Codigo,
		SalePrice:     rest.Amount(r.log, productResource, "precio_venta", row.PrecioVenta),
		PurchasePrice: rest.Amount(r.log, productResource, "precio_compra", row.PrecioCompra),
		Stock:         row.Stock,
		Size:          row.Talla,
		Color:         row.Color,
	}
}
