package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/delivery-order-service/internal/entities"
)

type ProductRepo interface {
	GetProductsBySKU(ctx context.Context, skuIDs []string) ([]entities.Product, error)
}

// catalogService закрывает две внешние для оркестратора роли: проверку
// остатков и расчет стоимости. Обе работают по одной таблице товаров.
type catalogService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewCatalogService(logger *slog.Logger, repo ProductRepo) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
	}
}

func (s *catalogService) ValidateInventory(ctx context.Context, items []entities.RequestedItem) error {
	products, err := s.fetchProducts(ctx, items)
	if err != nil {
		return err
	}

	var reasons []string
	for _, item := range items {
		if item.Qty <= 0 {
			reasons = append(reasons, fmt.Sprintf("%s: quantity must be positive", item.SkuID))
			continue
		}
		p, ok := products[item.SkuID]
		if !ok {
			reasons = append(reasons, fmt.Sprintf("%s not found", item.SkuID))
			continue
		}
		if p.Stock < item.Qty {
			reasons = append(reasons, fmt.Sprintf("%s out of stock", item.SkuID))
		}
	}

	if len(reasons) > 0 {
		return &entities.InventoryError{Reasons: reasons}
	}
	return nil
}

func (s *catalogService) CalculatePrice(ctx context.Context, items []entities.RequestedItem) (entities.PriceBreakdown, error) {
	products, err := s.fetchProducts(ctx, items)
	if err != nil {
		return entities.PriceBreakdown{}, err
	}

	breakdown := entities.PriceBreakdown{
		ItemPrices:    make(map[string]int, len(items)),
		ItemDiscounts: make(map[string]int, len(items)),
	}

	for _, item := range items {
		p, ok := products[item.SkuID]
		if !ok {
			continue
		}
		breakdown.ItemPrices[item.SkuID] = p.Price
		breakdown.ItemDiscounts[item.SkuID] = p.Discount
		breakdown.TotalAmount += (p.Price - p.Discount) * item.Qty
	}

	return breakdown, nil
}

func (s *catalogService) fetchProducts(ctx context.Context, items []entities.RequestedItem) (map[string]entities.Product, error) {
	skuIDs := make([]string, len(items))
	for i, item := range items {
		skuIDs[i] = item.SkuID
	}

	fetched, err := s.repo.GetProductsBySKU(ctx, skuIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	products := make(map[string]entities.Product, len(fetched))
	for _, p := range fetched {
		products[p.SkuID] = p
	}
	return products, nil
}
