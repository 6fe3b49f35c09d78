package service

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
	"roomcraft/internal/repository"
)

// ErrInvalidInput входные данные отклонены до изменения состояния
var ErrInvalidInput = domain.ErrValidation

// PricedTemplate шаблон с базовой ценой по умолчанию
type PricedTemplate struct {
	domain.FurnitureTemplate
	BasePrice float64 `json:"base_price"`
}

// CatalogService инкапсулирует бизнес-логику каталога мебели
type CatalogService struct {
	repo repository.CatalogRepository
	tx   repository.TxManager
	log  *zap.Logger
}

func NewCatalogService(repo repository.CatalogRepository, tx repository.TxManager, log *zap.Logger) *CatalogService {
	if log == nil {
		log = zap.NewNop()
	}
	return &CatalogService{repo: repo, tx: tx, log: log.Named("catalog")}
}

// Categories returns the fixed, ordered category list.
func (s *CatalogService) Categories() []domain.Category {
	return domain.Categories()
}

// ListFurniture returns templates, optionally of one category, each with
// its price at default dimensions.
func (s *CatalogService) ListFurniture(ctx context.Context, category *domain.Category) ([]PricedTemplate, error) {
	if category != nil && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *category)
	}
	var out []PricedTemplate
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		templates, err := s.repo.ListTemplates(ctx, repository.TemplateFilter{Category: category})
		if err != nil {
			return err
		}
		markup, err := s.repo.LaborMarkup(ctx)
		if err != nil {
			return err
		}
		out = make([]PricedTemplate, 0, len(templates))
		for _, t := range templates {
			out = append(out, PricedTemplate{FurnitureTemplate: t, BasePrice: pricing.TemplatePrice(t, markup)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *CatalogService) GetFurniture(ctx context.Context, id string) (*domain.FurnitureTemplate, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty furniture id", ErrInvalidInput)
	}
	return s.repo.GetTemplate(ctx, id)
}

// CreateFurniture validates t and stores it under a generated id.
func (s *CatalogService) CreateFurniture(ctx context.Context, t domain.FurnitureTemplate) (*domain.FurnitureTemplate, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cp := t.Clone()
	cp.ID = ""
	if err := s.repo.CreateTemplate(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.Info("furniture created", zap.String("id", cp.ID), zap.String("name", cp.Name))
	return &cp, nil
}

func (s *CatalogService) UpdateFurniture(ctx context.Context, t domain.FurnitureTemplate) (*domain.FurnitureTemplate, error) {
	if t.ID == "" {
		return nil, fmt.Errorf("%w: empty furniture id", ErrInvalidInput)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	cp := t.Clone()
	if err := s.repo.UpdateTemplate(ctx, &cp); err != nil {
		return nil, err
	}
	s.log.Info("furniture updated", zap.String("id", cp.ID))
	return &cp, nil
}

func (s *CatalogService) DeleteFurniture(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty furniture id", ErrInvalidInput)
	}
	if err := s.repo.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	s.log.Info("furniture deleted", zap.String("id", id))
	return nil
}

func (s *CatalogService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	return s.repo.ListMaterials(ctx)
}

func (s *CatalogService) UpsertMaterial(ctx context.Context, m domain.Material) (*domain.Material, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertMaterial(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *CatalogService) DeleteMaterial(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty material id", ErrInvalidInput)
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureUnused(ctx, "material", id, func(t domain.FurnitureTemplate) bool {
			_, ok := t.MaterialByID(id)
			return ok
		}); err != nil {
			return err
		}
		return s.repo.DeleteMaterial(ctx, id)
	})
}

func (s *CatalogService) ListColors(ctx context.Context) ([]domain.Color, error) {
	return s.repo.ListColors(ctx)
}

func (s *CatalogService) UpsertColor(ctx context.Context, c domain.Color) (*domain.Color, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertColor(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CatalogService) DeleteColor(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty color name", ErrInvalidInput)
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.ensureUnused(ctx, "color", name, func(t domain.FurnitureTemplate) bool {
			_, ok := t.ColorByName(name)
			return ok
		}); err != nil {
			return err
		}
		return s.repo.DeleteColor(ctx, name)
	})
}

// ensureUnused отклоняет удаление материала или цвета, который ещё предлагает
// какой-либо шаблон: заказы на такой шаблон перестали бы проходить проверку
func (s *CatalogService) ensureUnused(ctx context.Context, kind, key string, offers func(domain.FurnitureTemplate) bool) error {
	templates, err := s.repo.ListTemplates(ctx, repository.TemplateFilter{})
	if err != nil {
		return err
	}
	for _, t := range templates {
		if offers(t) {
			return fmt.Errorf("%w: %s %q is still offered by furniture %q", ErrInvalidInput, kind, key, t.ID)
		}
	}
	return nil
}

func (s *CatalogService) LaborMarkup(ctx context.Context) (float64, error) {
	return s.repo.LaborMarkup(ctx)
}

// SetLaborMarkup stores the markup fraction (0.3 means +30%).
func (s *CatalogService) SetLaborMarkup(ctx context.Context, v float64) (float64, error) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: markup must be a non-negative fraction", ErrInvalidInput)
	}
	if err := s.repo.SetLaborMarkup(ctx, v); err != nil {
		return 0, err
	}
	s.log.Info("labor markup changed", zap.Float64("markup", v))
	return v, nil
}

// QuoteRequest конфигурация изделия для расчёта цены; нулевые поля берутся из шаблона
type QuoteRequest struct {
	TemplateID   string  `json:"template_id"`
	Width        float64 `json:"width,omitempty"`
	Length       float64 `json:"length,omitempty"`
	Height       float64 `json:"height,omitempty"`
	MaterialID   string  `json:"material_id,omitempty"`
	Color        string  `json:"color,omitempty"`
	Corner       bool    `json:"corner,omitempty"`
	CornerLength float64 `json:"corner_length,omitempty"`
}

// Quote prices one configuration against the current catalog and markup.
func (s *CatalogService) Quote(ctx context.Context, q QuoteRequest) (pricing.Breakdown, error) {
	if q.TemplateID == "" {
		return pricing.Breakdown{}, fmt.Errorf("%w: template_id is required", ErrInvalidInput)
	}
	if q.Width < 0 || q.Length < 0 || q.Height < 0 || q.CornerLength < 0 {
		return pricing.Breakdown{}, fmt.Errorf("%w: dimensions must not be negative", ErrInvalidInput)
	}
	var b pricing.Breakdown
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		tpl, err := s.repo.GetTemplate(ctx, q.TemplateID)
		if err != nil {
			return err
		}
		it, err := q.item(*tpl)
		if err != nil {
			return err
		}
		markup, err := s.repo.LaborMarkup(ctx)
		if err != nil {
			return err
		}
		materials, err := s.repo.ListMaterials(ctx)
		if err != nil {
			return err
		}
		colors, err := s.repo.ListColors(ctx)
		if err != nil {
			return err
		}
		resolved, err := resolveItem(ctx, s.repo, it, materials, colors)
		if err != nil {
			return err
		}
		b = pricing.ItemBreakdown(resolved, markup)
		return nil
	})
	return b, err
}

// item builds the placed instance the request describes.
func (q QuoteRequest) item(tpl domain.FurnitureTemplate) (domain.PlacedItem, error) {
	it := domain.NewPlacedItem(tpl, "quote")
	if q.Width > 0 {
		it.CustomWidth = q.Width
	}
	if q.Length > 0 {
		it.CustomLength = q.Length
	}
	if q.Height > 0 {
		it.CustomHeight = q.Height
	}
	if q.MaterialID != "" {
		it.CustomMaterial = domain.Material{ID: q.MaterialID}
	}
	if q.Color != "" {
		it.CustomColor = domain.Color{Name: q.Color}
	}
	if q.Corner || q.CornerLength > 0 {
		if it.Corner == nil {
			return it, fmt.Errorf("%w: %q cannot be a corner unit", ErrInvalidInput, tpl.ID)
		}
		it.Corner.Enabled = q.Corner
		if q.CornerLength > 0 {
			it.Corner.Length = q.CornerLength
		}
	}
	return it, nil
}
