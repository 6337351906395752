package repository

import (
	"context"

	"github.com/diillson/sales-analytics-go/internal/domain/entity"
)

// ProductAPIRepository define o contrato para buscar o catálogo de
// produtos na API externa usada no enriquecimento.
type ProductAPIRepository interface {
	FetchAllProducts(ctx context.Context, baseURL string, limit int) ([]entity.Product, error)
}
