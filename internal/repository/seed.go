package repository

import "roomcraft/internal/domain"

// Catalog начальное содержимое каталога
type Catalog struct {
	Templates []domain.FurnitureTemplate
	Materials []domain.Material
	Colors    []domain.Color
	Markup    float64
}

// Seed replaces the catalog with c. Templates keep their ids. It bypasses
// the simulator: seeding happens once at startup, before any client.
func (m *MemoryStore) Seed(c Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templatesByID = make(map[string]domain.FurnitureTemplate, len(c.Templates))
	m.templateOrder = m.templateOrder[:0]
	for _, t := range c.Templates {
		m.templatesByID[t.ID] = t.Clone()
		m.templateOrder = append(m.templateOrder, t.ID)
	}
	m.materials = append([]domain.Material(nil), c.Materials...)
	m.colors = append([]domain.Color(nil), c.Colors...)
	m.markup = c.Markup
}

// DefaultCatalog is the showroom catalog: six finishes, four sheet
// materials, a 30% labor markup and three corner-capable pieces.
func DefaultCatalog() Catalog {
	colors := []domain.Color{
		{Name: "White", Hex: "#FFFFFF", AdditionalCostPerSqMeter: 0},
		{Name: "Black Ash", Hex: "#343434", AdditionalCostPerSqMeter: 10},
		{Name: "Oak", Hex: "#b99564", AdditionalCostPerSqMeter: 25},
		{Name: "Walnut", Hex: "#634832", AdditionalCostPerSqMeter: 40},
		{Name: "Graphite", Hex: "#555555", AdditionalCostPerSqMeter: 15},
		{Name: "Navy Blue (Gloss)", Hex: "#000080", AdditionalCostPerSqMeter: 50},
	}
	materials := []domain.Material{
		{ID: "m1", Name: "MDF", PricePerSqMeter: 50},
		{ID: "m2", Name: "Plywood", PricePerSqMeter: 75},
		{ID: "m3", Name: "Solid Oak", PricePerSqMeter: 250},
		{ID: "m4", Name: "Solid Walnut", PricePerSqMeter: 320},
	}

	templates := []domain.FurnitureTemplate{
		{
			ID:       "lv-sofa-1",
			Name:     "Modern Sofa",
			Category: domain.CategoryLivingRoom,
			ImageURL: "https://images.unsplash.com/photo-1555041469-a586c61ea9bc?auto=format&fit=crop&w=800&q=80",
			Components: []domain.Component{
				{Name: "Base Frame", Width: 220, Length: 90},
				{Name: "Back Panel", Width: 220, Length: 50},
				{Name: "Side Panel", Width: 90, Length: 50},
				{Name: "Side Panel", Width: 90, Length: 50},
			},
			Width:              domain.DimensionRange{Min: 180, Max: 300, Default: 220},
			Length:             domain.DimensionRange{Min: 80, Max: 110, Default: 90},
			Height:             domain.DimensionRange{Min: 70, Max: 90, Default: 80},
			AvailableColors:    []domain.Color{colors[0], colors[4], colors[5]},
			AvailableMaterials: []domain.Material{materials[0], materials[1]},
			Corner: &domain.CornerSpec{
				Components: []domain.Component{
					{Name: "Corner Base Frame", Width: 180, Length: 90},
					{Name: "Corner Back Panel", Width: 180, Length: 50},
				},
				Length: domain.DimensionRange{Min: 150, Max: 250, Default: 180},
			},
		},
		{
			ID:       "br-wardrobe-1",
			Name:     "3-Door Wardrobe",
			Category: domain.CategoryBedroom,
			ImageURL: "https://images.unsplash.com/photo-1558993583-1a7102224419?auto=format&fit=crop&w=800&q=80",
			Components: []domain.Component{
				{Name: "Top Panel", Width: 180, Length: 65},
				{Name: "Bottom Panel", Width: 180, Length: 65},
				{Name: "Left Panel", Width: 220, Length: 65},
				{Name: "Right Panel", Width: 220, Length: 65},
				{Name: "Back Panel", Width: 180, Length: 220},
				{Name: "Door", Width: 60, Length: 215},
				{Name: "Door", Width: 60, Length: 215},
				{Name: "Door", Width: 60, Length: 215},
				{Name: "Shelf", Width: 178, Length: 60},
				{Name: "Shelf", Width: 178, Length: 60},
			},
			Width:              domain.DimensionRange{Min: 150, Max: 250, Default: 180},
			Length:             domain.DimensionRange{Min: 60, Max: 70, Default: 65},
			Height:             domain.DimensionRange{Min: 200, Max: 240, Default: 220},
			AvailableColors:    []domain.Color{colors[0], colors[1]},
			AvailableMaterials: []domain.Material{materials[0], materials[1]},
			Corner: &domain.CornerSpec{
				Components: []domain.Component{
					{Name: "Corner Top Panel", Width: 150, Length: 65},
					{Name: "Corner Bottom Panel", Width: 150, Length: 65},
					{Name: "Corner Back Panel", Width: 150, Length: 220},
					{Name: "Corner Shelf", Width: 148, Length: 60},
				},
				Length: domain.DimensionRange{Min: 120, Max: 200, Default: 150},
			},
		},
		{
			ID:       "ki-cabinet-1",
			Name:     "Kitchen Island",
			Category: domain.CategoryKitchen,
			ImageURL: "https://images.unsplash.com/photo-1600585152225-3579fe9d7ae2?auto=format&fit=crop&w=800&q=80",
			Components: []domain.Component{
				{Name: "Countertop", Width: 150, Length: 90},
				{Name: "Side Panel", Width: 90, Length: 90},
				{Name: "Side Panel", Width: 90, Length: 90},
				{Name: "Front Panel", Width: 150, Length: 90},
				{Name: "Back Panel", Width: 150, Length: 90},
			},
			Width:              domain.DimensionRange{Min: 120, Max: 200, Default: 150},
			Length:             domain.DimensionRange{Min: 80, Max: 100, Default: 90},
			Height:             domain.DimensionRange{Min: 90, Max: 95, Default: 92},
			AvailableColors:    []domain.Color{colors[0], colors[4]},
			AvailableMaterials: []domain.Material{materials[2], materials[3]},
			Corner: &domain.CornerSpec{
				Components: []domain.Component{
					{Name: "Corner Countertop", Width: 140, Length: 90},
					{Name: "Corner Front Panel", Width: 140, Length: 90},
				},
				Length: domain.DimensionRange{Min: 120, Max: 180, Default: 140},
			},
		},
	}

	return Catalog{Templates: templates, Materials: materials, Colors: colors, Markup: 0.30}
}
