package catalog

import (
	"context"
	"fmt"
	"strings"

	"backoffice/internal/entities"
)

type Catalog struct {
	repository Repository
}

func New(repository Repository) *Catalog {
	return &Catalog{
		repository: repository,
	}
}

func (s *Catalog) CreateProduct(ctx context.Context, productModify entities.ProductModify) (int64, error) {
	if productModify.SKU == nil || productModify.Name == nil || productModify.Unit == nil || productModify.Price == nil {
		return 0, ErrMissingRequiredFields
	}

	if strings.TrimSpace(*productModify.SKU) == "" {
		return 0, ErrInvalidSKU
	}
	if strings.TrimSpace(*productModify.Name) == "" {
		return 0, ErrInvalidName
	}
	if *productModify.Price <= 0 {
		return 0, ErrInvalidPrice
	}

	id, err := s.repository.Create(ctx, productModify)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	return id, nil
}

// GetProducts возвращает только активные товары, порядок не гарантируется.
// Если каких-то id нет либо они деактивированы - вернется ErrProductNotFound.
func (s *Catalog) GetProducts(ctx context.Context, ids []int64) ([]entities.Product, error) {
	if len(ids) == 0 {
		return nil, ErrMissingRequiredFields
	}

	products, err := s.repository.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	if len(products) != len(uniqueIDs(ids)) {
		return nil, ErrProductNotFound
	}

	return products, nil
}

func (s *Catalog) ListProducts(ctx context.Context, params entities.ListParams) ([]entities.Product, int64, error) {
	products, total, err := s.repository.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}

	return products, total, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
