package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
	"roomcraft/internal/repository"
)

// PriceTolerance is how far, in currency units, a client total may drift
// from the recomputed one before a discrepancy is logged.
const PriceTolerance = 1.0

// OrderService принимает заказы и пересчитывает их стоимость по каталогу
type OrderService struct {
	catalog repository.CatalogRepository
	orders  repository.OrderRepository
	tx      repository.TxManager
	log     *zap.Logger
}

func NewOrderService(catalog repository.CatalogRepository, orders repository.OrderRepository, tx repository.TxManager, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrderService{catalog: catalog, orders: orders, tx: tx, log: log.Named("orders")}
}

var ErrEmptyOrder = fmt.Errorf("%w: your room is empty, add some furniture before ordering", ErrInvalidInput)

// SubmitOrder recomputes the total of items from the current catalog and
// stores a New order holding the resolved item snapshot. The server total
// always wins; a client total off by more than PriceTolerance is only logged.
func (s *OrderService) SubmitOrder(ctx context.Context, items []domain.PlacedItem, clientTotal float64) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	var created *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		markup, err := s.catalog.LaborMarkup(ctx)
		if err != nil {
			return err
		}
		materials, err := s.catalog.ListMaterials(ctx)
		if err != nil {
			return err
		}
		colors, err := s.catalog.ListColors(ctx)
		if err != nil {
			return err
		}

		resolved := make([]domain.PlacedItem, 0, len(items))
		serverTotal := 0.0
		for _, it := range items {
			r, err := resolveItem(ctx, s.catalog, it, materials, colors)
			if err != nil {
				return err
			}
			serverTotal += pricing.ItemPrice(r, markup)
			resolved = append(resolved, r)
		}

		if math.Abs(serverTotal-clientTotal) > PriceTolerance {
			s.log.Warn("price discrepancy, using server price",
				zap.Float64("client_total", clientTotal),
				zap.Float64("server_total", serverTotal),
			)
		}

		o := domain.Order{
			TotalPrice: serverTotal,
			Status:     domain.OrderStatusNew,
			Items:      resolved,
		}
		if err := s.orders.Create(ctx, &o); err != nil {
			return err
		}
		created = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order submitted",
		zap.String("order_id", created.ID),
		zap.Int("items", len(created.Items)),
		zap.Float64("total", created.TotalPrice),
	)
	return created, nil
}

// resolveItem replaces the client's template, material and color snapshots
// with the catalog's current ones. Any reference the catalog does not know is
// a validation error.
func resolveItem(ctx context.Context, catalog repository.CatalogRepository, it domain.PlacedItem, materials []domain.Material, colors []domain.Color) (domain.PlacedItem, error) {
	tpl, err := catalog.GetTemplate(ctx, it.TemplateID)
	if errors.Is(err, domain.ErrNotFound) {
		return it, fmt.Errorf("%w: unknown furniture %q", ErrInvalidInput, it.TemplateID)
	}
	if err != nil {
		return it, err
	}
	if _, ok := tpl.MaterialByID(it.CustomMaterial.ID); !ok {
		return it, fmt.Errorf("%w: material %q is not offered for %q", ErrInvalidInput, it.CustomMaterial.ID, tpl.ID)
	}
	if _, ok := tpl.ColorByName(it.CustomColor.Name); !ok {
		return it, fmt.Errorf("%w: color %q is not offered for %q", ErrInvalidInput, it.CustomColor.Name, tpl.ID)
	}
	mat, ok := findMaterial(materials, it.CustomMaterial.ID)
	if !ok {
		return it, fmt.Errorf("%w: unknown material %q", ErrInvalidInput, it.CustomMaterial.ID)
	}
	color, ok := findColor(colors, it.CustomColor.Name)
	if !ok {
		return it, fmt.Errorf("%w: unknown color %q", ErrInvalidInput, it.CustomColor.Name)
	}

	r := it.Clone()
	r.Template = *tpl
	r.CustomMaterial = mat
	r.CustomColor = color
	if !tpl.CanBeCorner() {
		r.Corner = nil
	}
	return r, nil
}

func findMaterial(list []domain.Material, id string) (domain.Material, bool) {
	for _, m := range list {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Material{}, false
}

func findColor(list []domain.Color, name string) (domain.Color, bool) {
	for _, c := range list {
		if c.Name == name {
			return c, true
		}
	}
	return domain.Color{}, false
}

// ListOrders возвращает заказы, новые первыми
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// GetOrder возвращает заказ по id
func (s *OrderService) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrInvalidInput)
	}
	return s.orders.GetByID(ctx, id)
}

// UpdateOrderStatus sets any status on an order; the workflow is not enforced.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty order id", ErrInvalidInput)
	}
	if _, err := domain.ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}
	var updated *domain.Order
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		o, err := s.orders.GetByID(ctx, id)
		if err != nil {
			return err
		}
		o.Status = status
		if err := s.orders.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("order status changed", zap.String("order_id", id), zap.String("status", string(status)))
	return updated, nil
}
