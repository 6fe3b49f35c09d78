package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomcraft/internal/domain"
)

var mdf = domain.Material{ID: "m1", Name: "MDF", PricePerSqMeter: 50}

func bench() domain.FurnitureTemplate {
	return domain.FurnitureTemplate{
		ID:                 "bench",
		Name:               "Bench",
		Category:           domain.CategoryHallway,
		Components:         []domain.Component{{Name: "Seat", Width: 220, Length: 90}},
		Width:              domain.DimensionRange{Min: 100, Max: 500, Default: 220},
		Length:             domain.DimensionRange{Min: 50, Max: 120, Default: 90},
		Height:             domain.DimensionRange{Min: 40, Max: 60, Default: 45},
		AvailableColors:    []domain.Color{{Name: "White", AdditionalCostPerSqMeter: 0}},
		AvailableMaterials: []domain.Material{mdf},
	}
}

func cornerSofa() domain.FurnitureTemplate {
	t := bench()
	t.Components = []domain.Component{
		{Name: "Base Frame", Width: 220, Length: 90},
		{Name: "Back Panel", Width: 220, Length: 50},
	}
	t.Corner = &domain.CornerSpec{
		Components: []domain.Component{{Name: "Corner Base Frame", Width: 180, Length: 90}},
		Length:     domain.DimensionRange{Min: 150, Max: 250, Default: 180},
	}
	return t
}

func TestTemplatePrice_BaseScenario(t *testing.T) {
	// (2.2 * 0.9 * 50) * 1.3 = 128.7
	assert.Equal(t, 129.0, TemplatePrice(bench(), 0.30))
}

func TestItemPrice_DoubleWidth(t *testing.T) {
	it := domain.NewPlacedItem(bench(), "i1")
	assert.Equal(t, 129.0, ItemPrice(it, 0.30))

	it.CustomWidth = 440
	// (4.4 * 0.9 * 50) * 1.3 = 257.4
	assert.Equal(t, 257.0, ItemPrice(it, 0.30))
}

func TestPrice_NoComponents(t *testing.T) {
	tpl := bench()
	tpl.Components = nil
	assert.Equal(t, 0.0, TemplatePrice(tpl, 0.3))

	it := domain.NewPlacedItem(tpl, "i")
	it.CustomWidth = 400
	assert.Equal(t, 0.0, ItemPrice(it, 0.3))
}

func TestPanelPrice_EdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, PanelPrice(0, 100, mdf, nil))
	assert.Equal(t, 0.0, PanelPrice(100, -5, mdf, nil))
	assert.Equal(t, 50.0, PanelPrice(100, 100, mdf, nil))

	gloss := &domain.Color{Name: "Gloss", AdditionalCostPerSqMeter: 50}
	assert.Equal(t, 100.0, PanelPrice(100, 100, mdf, gloss))
}

func TestItemPrice_MissingColorIsNoUpcharge(t *testing.T) {
	it := domain.NewPlacedItem(bench(), "i")
	it.CustomColor = domain.Color{}
	assert.Equal(t, 129.0, ItemPrice(it, 0.30))
}

func TestItemPrice_ColorUpcharge(t *testing.T) {
	it := domain.NewPlacedItem(bench(), "i")
	it.CustomColor = domain.Color{Name: "Walnut", AdditionalCostPerSqMeter: 40}
	// 1.98 m2 * (50 + 40) * 1.3 = 231.66
	assert.Equal(t, 232.0, ItemPrice(it, 0.30))
}

func TestItemPrice_MonotonicInUniformScale(t *testing.T) {
	it := domain.NewPlacedItem(cornerSofa(), "i")
	prev := -1.0
	for _, s := range []float64{0.1, 0.5, 0.9, 1, 1.01, 1.5, 2, 3.7} {
		it.CustomWidth = 220 * s
		it.CustomLength = 90 * s
		p := ItemPrice(it, 0.30)
		assert.GreaterOrEqual(t, p, prev, "scale %v", s)
		prev = p
	}
}

func TestItemPrice_ComponentOrderInvariant(t *testing.T) {
	tpl := domain.FurnitureTemplate{
		Width:  domain.DimensionRange{Default: 180},
		Length: domain.DimensionRange{Default: 65},
		Components: []domain.Component{
			{Name: "Top", Width: 180, Length: 65},
			{Name: "Door", Width: 60, Length: 215},
			{Name: "Shelf", Width: 178, Length: 60},
		},
	}
	reversed := tpl.Clone()
	reversed.Components = []domain.Component{tpl.Components[2], tpl.Components[1], tpl.Components[0]}

	a := domain.PlacedItem{Template: tpl, CustomWidth: 213, CustomLength: 61, CustomMaterial: mdf}
	b := a
	b.Template = reversed
	assert.Equal(t, ItemPrice(a, 0.3), ItemPrice(b, 0.3))
}

func TestItemPrice_CornerToggle(t *testing.T) {
	it := domain.NewPlacedItem(cornerSofa(), "i")
	it.CustomWidth = 250
	mainOnly := ItemBreakdown(it, 0)

	it.Corner.Enabled = true
	it.Corner.Length = 200
	withCorner := ItemBreakdown(it, 0)

	// corner wing: width scaled by 200/180, length by the body's depth scale (1)
	cornerPanel := PanelPrice(200, 90, mdf, &it.CustomColor)
	assert.InDelta(t, mainOnly.MaterialCost+cornerPanel, withCorner.MaterialCost, 1e-9)

	it.Corner.Enabled = false
	assert.Equal(t, mainOnly.MaterialCost, ItemBreakdown(it, 0).MaterialCost)
}

func TestItemPrice_CornerUsesBodyDepthScale(t *testing.T) {
	it := domain.NewPlacedItem(cornerSofa(), "i")
	it.Corner.Enabled = true
	it.CustomLength = 45 // half depth

	b := ItemBreakdown(it, 0)
	var corner []Panel
	for _, p := range b.Panels {
		if p.Wing == WingCorner {
			corner = append(corner, p)
		}
	}
	require.Len(t, corner, 1)
	assert.Equal(t, 180.0, corner[0].Width)
	assert.Equal(t, 45.0, corner[0].Length)
}

func TestItemPrice_CornerWithoutDefaultLengthIgnored(t *testing.T) {
	tpl := cornerSofa()
	tpl.Corner.Length.Default = 0
	it := domain.NewPlacedItem(tpl, "i")
	it.Corner.Enabled = true
	plain := domain.NewPlacedItem(tpl, "j")
	assert.Equal(t, ItemPrice(plain, 0.3), ItemPrice(it, 0.3))
}

func TestTemplatePrice_NeverCorner(t *testing.T) {
	tpl := cornerSofa()
	noCorner := tpl.Clone()
	noCorner.Corner = nil
	assert.Equal(t, TemplatePrice(noCorner, 0.3), TemplatePrice(tpl, 0.3))
}

func TestBreakdown_Totals(t *testing.T) {
	b := TemplateBreakdown(bench(), 0.30)
	require.Len(t, b.Panels, 1)
	assert.Equal(t, WingMain, b.Panels[0].Wing)
	assert.InDelta(t, 1.98, b.Panels[0].Area, 1e-12)
	assert.InDelta(t, 99.0, b.MaterialCost, 1e-12)
	assert.InDelta(t, 29.7, b.Labor, 1e-12)
	assert.Equal(t, 129.0, b.Total)
}

func TestTotal_SumsRoundedItems(t *testing.T) {
	a := domain.NewPlacedItem(bench(), "a")
	b := domain.NewPlacedItem(bench(), "b")
	b.CustomWidth = 440
	assert.Equal(t, 129.0+257.0, Total([]domain.PlacedItem{a, b}, 0.30))
	assert.Equal(t, 0.0, Total(nil, 0.30))
}

func TestItemPrice_ZeroDefaultsDoNotPanic(t *testing.T) {
	it := domain.PlacedItem{
		Template:       domain.FurnitureTemplate{Components: []domain.Component{{Width: 10, Length: 10}}},
		CustomWidth:    100,
		CustomLength:   100,
		CustomMaterial: mdf,
	}
	assert.Equal(t, 0.0, ItemPrice(it, 0.3))
}
