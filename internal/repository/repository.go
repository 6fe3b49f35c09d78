package repository

import (
	"context"

	"roomcraft/internal/domain"
)

// ErrNotFound возвращается, когда сущность не найдена
var ErrNotFound = domain.ErrNotFound

// TemplateFilter параметры фильтрации списка шаблонов
type TemplateFilter struct {
	Category *domain.Category
}

// CatalogRepository хранилище каталога: шаблоны, материалы, цвета, наценка
type CatalogRepository interface {
	CreateTemplate(ctx context.Context, t *domain.FurnitureTemplate) error
	GetTemplate(ctx context.Context, id string) (*domain.FurnitureTemplate, error)
	UpdateTemplate(ctx context.Context, t *domain.FurnitureTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplates(ctx context.Context, f TemplateFilter) ([]domain.FurnitureTemplate, error)

	ListMaterials(ctx context.Context) ([]domain.Material, error)
	UpsertMaterial(ctx context.Context, m *domain.Material) error
	DeleteMaterial(ctx context.Context, id string) error

	ListColors(ctx context.Context) ([]domain.Color, error)
	UpsertColor(ctx context.Context, c *domain.Color) error
	DeleteColor(ctx context.Context, name string) error

	LaborMarkup(ctx context.Context) (float64, error)
	SetLaborMarkup(ctx context.Context, v float64) error
}

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	// List returns orders most recent first.
	List(ctx context.Context) ([]domain.Order, error)
}

// TxManager абстракция транзакции. Для in-memory: глобальная блокировка записи.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
