package room

import (
	"fmt"

	"roomcraft/internal/domain"
)

// Update is a single customization applied by Room.UpdateItemProperty.
type Update interface {
	apply(it *domain.PlacedItem) error
}

// Width sets the custom width in centimeters.
type Width float64

// Length sets the custom depth in centimeters.
type Length float64

// Height sets the custom height in centimeters and keeps the item on the floor.
type Height float64

// Rotation sets the Y rotation in degrees.
type Rotation float64

// Corner switches the corner configuration on or off.
type Corner bool

// CornerLength sets the corner wing length in centimeters.
type CornerLength float64

// Material replaces the panel material.
type Material domain.Material

// Color replaces the finish.
type Color domain.Color

func (u Width) apply(it *domain.PlacedItem) error {
	it.CustomWidth = float64(u)
	return nil
}

func (u Length) apply(it *domain.PlacedItem) error {
	it.CustomLength = float64(u)
	return nil
}

func (u Height) apply(it *domain.PlacedItem) error {
	it.CustomHeight = float64(u)
	it.Position.Y = domain.FloorY(it.CustomHeight)
	return nil
}

func (u Rotation) apply(it *domain.PlacedItem) error {
	it.Rotation = domain.NormalizeRotation(float64(u))
	return nil
}

func (u Corner) apply(it *domain.PlacedItem) error {
	if it.Corner == nil {
		return notCornerCapable(it)
	}
	it.Corner.Enabled = bool(u)
	return nil
}

func (u CornerLength) apply(it *domain.PlacedItem) error {
	if it.Corner == nil {
		return notCornerCapable(it)
	}
	it.Corner.Length = float64(u)
	return nil
}

func (u Material) apply(it *domain.PlacedItem) error {
	it.CustomMaterial = domain.Material(u)
	return nil
}

func (u Color) apply(it *domain.PlacedItem) error {
	it.CustomColor = domain.Color(u)
	return nil
}

func notCornerCapable(it *domain.PlacedItem) error {
	return fmt.Errorf("%w: %q cannot be a corner unit", domain.ErrValidation, it.TemplateID)
}
