// Package pricing turns a furniture template or a placed instance into a
// price. Every piece is treated as a set of flat panels: each panel is scaled
// per axis to the customer's dimensions and charged by area for its material
// and color, and the material total is marked up for labor.
package pricing

import (
	"github.com/shopspring/decimal"

	"roomcraft/internal/domain"
)

// Wing tells which part of a corner unit a panel belongs to.
type Wing string

const (
	WingMain   Wing = "main"
	WingCorner Wing = "corner"
)

// Panel один отмасштабированный лист с его площадью и стоимостью
type Panel struct {
	Name   string  `json:"name"`
	Wing   Wing    `json:"wing"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Area   float64 `json:"area"`
	Cost   float64 `json:"cost"`
}

// Breakdown полный расчёт цены одного изделия
type Breakdown struct {
	Panels       []Panel         `json:"panels"`
	Material     domain.Material `json:"material"`
	Color        *domain.Color   `json:"color,omitempty"`
	MaterialCost float64         `json:"material_cost"`
	Labor        float64         `json:"labor"`
	Total        float64         `json:"total"`
}

// config is the resolved set of inputs both entry points reduce to.
type config struct {
	template     domain.FurnitureTemplate
	width        float64
	length       float64
	material     domain.Material
	color        *domain.Color
	corner       bool
	cornerLength float64
}

var hundred = decimal.NewFromInt(100)

// PanelPrice is the cost of one panel of widthCm x lengthCm. A non-positive
// side yields 0; a nil color adds no upcharge.
func PanelPrice(widthCm, lengthCm float64, material domain.Material, color *domain.Color) float64 {
	return panelCost(widthCm, lengthCm, material, color).InexactFloat64()
}

func panelArea(widthCm, lengthCm float64) decimal.Decimal {
	if widthCm <= 0 || lengthCm <= 0 {
		return decimal.Zero
	}
	w := decimal.NewFromFloat(widthCm).Div(hundred)
	l := decimal.NewFromFloat(lengthCm).Div(hundred)
	return w.Mul(l)
}

func panelCost(widthCm, lengthCm float64, material domain.Material, color *domain.Color) decimal.Decimal {
	area := panelArea(widthCm, lengthCm)
	if area.IsZero() {
		return decimal.Zero
	}
	cost := area.Mul(decimal.NewFromFloat(material.PricePerSqMeter))
	if color != nil {
		cost = cost.Add(area.Mul(decimal.NewFromFloat(color.AdditionalCostPerSqMeter)))
	}
	return cost
}

// TemplatePrice prices a template at its defaults, with its first material
// and first color, as a regular (non-corner) unit.
func TemplatePrice(t domain.FurnitureTemplate, markup float64) float64 {
	return price(templateConfig(t), markup)
}

// ItemPrice prices a placed instance from its customization.
func ItemPrice(it domain.PlacedItem, markup float64) float64 {
	return price(itemConfig(it), markup)
}

// Total sums the rounded prices of items.
func Total(items []domain.PlacedItem, markup float64) float64 {
	sum := 0.0
	for _, it := range items {
		sum += ItemPrice(it, markup)
	}
	return sum
}

func price(c config, markup float64) float64 {
	return compute(c, markup, false).Total
}

// ItemBreakdown returns the panel list and subtotals of a placed instance.
func ItemBreakdown(it domain.PlacedItem, markup float64) Breakdown {
	return compute(itemConfig(it), markup, true)
}

// TemplateBreakdown returns the panel list and subtotals of a template at its defaults.
func TemplateBreakdown(t domain.FurnitureTemplate, markup float64) Breakdown {
	return compute(templateConfig(t), markup, true)
}

func templateConfig(t domain.FurnitureTemplate) config {
	c := config{template: t, width: t.Width.Default, length: t.Length.Default}
	if len(t.AvailableMaterials) > 0 {
		c.material = t.AvailableMaterials[0]
	}
	if len(t.AvailableColors) > 0 {
		color := t.AvailableColors[0]
		c.color = &color
	}
	if t.Corner != nil {
		c.cornerLength = t.Corner.Length.Default
	}
	return c
}

func itemConfig(it domain.PlacedItem) config {
	color := it.CustomColor
	c := config{
		template: it.Template,
		width:    it.CustomWidth,
		length:   it.CustomLength,
		material: it.CustomMaterial,
		corner:   it.IsCorner(),
	}
	if color.Name != "" || color.AdditionalCostPerSqMeter != 0 {
		c.color = &color
	}
	c.cornerLength = it.CornerLength()
	return c
}

func scale(current, def float64) decimal.Decimal {
	if def == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(current).Div(decimal.NewFromFloat(def))
}

func compute(c config, markup float64, withPanels bool) Breakdown {
	b := Breakdown{Material: c.material, Color: c.color}
	t := c.template
	if len(t.Components) == 0 {
		return b
	}

	widthScale := scale(c.width, t.Width.Default)
	lengthScale := scale(c.length, t.Length.Default)

	total := decimal.Zero
	add := func(p domain.Component, wing Wing, ws, ls decimal.Decimal) {
		w := decimal.NewFromFloat(p.Width).Mul(ws).InexactFloat64()
		l := decimal.NewFromFloat(p.Length).Mul(ls).InexactFloat64()
		cost := panelCost(w, l, c.material, c.color)
		total = total.Add(cost)
		if withPanels {
			b.Panels = append(b.Panels, Panel{
				Name:   p.Name,
				Wing:   wing,
				Width:  w,
				Length: l,
				Area:   panelArea(w, l).InexactFloat64(),
				Cost:   cost.InexactFloat64(),
			})
		}
	}

	for _, p := range t.Components {
		add(p, WingMain, widthScale, lengthScale)
	}

	// corner wing panels scale their width by the corner length and share the
	// body's depth scale
	if c.corner && t.Corner != nil && len(t.Corner.Components) > 0 && t.Corner.Length.Default != 0 {
		cornerScale := scale(c.cornerLength, t.Corner.Length.Default)
		for _, p := range t.Corner.Components {
			add(p, WingCorner, cornerScale, lengthScale)
		}
	}

	withLabor := total.Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(markup)))
	b.MaterialCost = total.InexactFloat64()
	b.Labor = withLabor.Sub(total).InexactFloat64()
	b.Total = roundHalfUp(withLabor)
	return b
}

// roundHalfUp rounds to whole currency units, halves toward +inf.
func roundHalfUp(d decimal.Decimal) float64 {
	return d.Add(decimal.NewFromFloat(0.5)).Floor().InexactFloat64()
}
