package domain

import "math"

// CornerConfig состояние углового варианта; есть только у шаблонов,
// которые могут быть угловыми
type CornerConfig struct {
	Enabled bool    `json:"enabled"`
	Length  float64 `json:"length"`
}

// PlacedItem экземпляр шаблона, размещённый в комнате.
// Размеры в сантиметрах, позиция в метрах от центра комнаты.
type PlacedItem struct {
	InstanceID     string            `json:"instance_id"`
	TemplateID     string            `json:"template_id"`
	Template       FurnitureTemplate `json:"template"`
	Position       Vec3              `json:"position"`
	CustomWidth    float64           `json:"custom_width"`
	CustomLength   float64           `json:"custom_length"`
	CustomHeight   float64           `json:"custom_height"`
	CustomColor    Color             `json:"custom_color"`
	CustomMaterial Material          `json:"custom_material"`
	Rotation       float64           `json:"rotation"`
	Corner         *CornerConfig     `json:"corner,omitempty"`
}

// NewPlacedItem creates an instance of t at the room centre, standing on the
// floor, with every customization at its template default.
func NewPlacedItem(t FurnitureTemplate, instanceID string) PlacedItem {
	it := PlacedItem{
		InstanceID:   instanceID,
		TemplateID:   t.ID,
		Template:     t.Clone(),
		Position:     Vec3{X: 0, Y: FloorY(t.Height.Default), Z: 0},
		CustomWidth:  t.Width.Default,
		CustomLength: t.Length.Default,
		CustomHeight: t.Height.Default,
	}
	if len(t.AvailableColors) > 0 {
		it.CustomColor = t.AvailableColors[0]
	}
	if len(t.AvailableMaterials) > 0 {
		it.CustomMaterial = t.AvailableMaterials[0]
	}
	if t.Corner != nil {
		length := t.Corner.Length.Default
		if length == 0 {
			length = t.Length.Min
		}
		it.Corner = &CornerConfig{Length: length}
	}
	return it
}

// FloorY is the centre height of an item of the given height (cm) resting on
// the floor, in meters.
func FloorY(heightCm float64) float64 {
	return heightCm / 100 / 2
}

// IsCorner reports whether the instance is configured as a corner unit.
func (it PlacedItem) IsCorner() bool {
	return it.Corner != nil && it.Corner.Enabled
}

// CornerLength returns the corner wing length, 0 when the template has no corner.
func (it PlacedItem) CornerLength() float64 {
	if it.Corner == nil {
		return 0
	}
	return it.Corner.Length
}

// Clone returns a copy sharing no mutable state with it.
func (it PlacedItem) Clone() PlacedItem {
	cp := it
	cp.Template = it.Template.Clone()
	if it.Corner != nil {
		c := *it.Corner
		cp.Corner = &c
	}
	return cp
}

// CloneItems deep-copies a slice of placed items.
func CloneItems(items []PlacedItem) []PlacedItem {
	if items == nil {
		return nil
	}
	out := make([]PlacedItem, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

// NormalizeRotation maps any angle in degrees into [0, 360).
func NormalizeRotation(deg float64) float64 {
	r := math.Mod(deg, 360)
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}
