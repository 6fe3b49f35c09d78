package domain

import (
	"fmt"
	"time"
)

// Category фиксированная категория комнаты, к которой относится шаблон
type Category string

const (
	CategoryLivingRoom Category = "Living Room"
	CategoryDiningRoom Category = "Dining Room"
	CategoryBedroom    Category = "Bedroom"
	CategoryKitchen    Category = "Kitchen"
	CategoryKids       Category = "Kids"
	CategoryLibrary    Category = "Library"
	CategoryHallway    Category = "Hallway"
)

// Categories returns the fixed category list in display order.
func Categories() []Category {
	return []Category{
		CategoryLivingRoom,
		CategoryDiningRoom,
		CategoryBedroom,
		CategoryKitchen,
		CategoryKids,
		CategoryLibrary,
		CategoryHallway,
	}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Vec3 точка или смещение в метрах, Y направлена вверх
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Axis одна из осей комнаты
type Axis string

const (
	AxisWidth  Axis = "width"
	AxisLength Axis = "length"
	AxisHeight Axis = "height"
)

// RoomDimensions размеры комнаты в метрах
type RoomDimensions struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// DefaultRoom is the room a new session starts with.
var DefaultRoom = RoomDimensions{Width: 5, Length: 4, Height: 2.5}

// With returns a copy with one axis replaced.
func (d RoomDimensions) With(axis Axis, value float64) (RoomDimensions, error) {
	switch axis {
	case AxisWidth:
		d.Width = value
	case AxisLength:
		d.Length = value
	case AxisHeight:
		d.Height = value
	default:
		return d, fmt.Errorf("%w: unknown axis %q", ErrValidation, axis)
	}
	return d, nil
}

// Component плоская панель, из которой собирается мебель (сантиметры)
type Component struct {
	Name   string  `json:"name"`
	Width  float64 `json:"width" validate:"gt=0"`
	Length float64 `json:"length" validate:"gt=0"`
}

// Material материал панелей с ценой за квадратный метр
type Material struct {
	ID              string  `json:"id"`
	Name            string  `json:"name" validate:"required"`
	PricePerSqMeter float64 `json:"price_per_sq_meter" validate:"gte=0"`
}

// Color цвет покрытия; идентифицируется по имени
type Color struct {
	Name                     string  `json:"name" validate:"required"`
	Hex                      string  `json:"hex"`
	AdditionalCostPerSqMeter float64 `json:"additional_cost_per_sq_meter" validate:"gte=0"`
}

// DimensionRange допустимый диапазон размера в сантиметрах
type DimensionRange struct {
	Min     float64 `json:"min" validate:"gt=0"`
	Max     float64 `json:"max" validate:"gtefield=Default"`
	Default float64 `json:"default" validate:"gtefield=Min"`
}

// Contains reports whether v lies within [Min, Max].
func (r DimensionRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// CornerSpec описывает второе крыло углового варианта
type CornerSpec struct {
	Components []Component    `json:"components" validate:"min=1,dive"`
	Length     DimensionRange `json:"length"`
}

// FurnitureTemplate шаблон мебели из каталога
type FurnitureTemplate struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name" validate:"required"`
	Category           Category       `json:"category" validate:"category"`
	ImageURL           string         `json:"image_url"`
	Components         []Component    `json:"components" validate:"dive"`
	Width              DimensionRange `json:"width"`
	Length             DimensionRange `json:"length"`
	Height             DimensionRange `json:"height"`
	AvailableColors    []Color        `json:"available_colors" validate:"min=1,dive"`
	AvailableMaterials []Material     `json:"available_materials" validate:"min=1,dive"`
	Corner             *CornerSpec    `json:"corner,omitempty" validate:"omitempty"`
}

func (t FurnitureTemplate) CanBeCorner() bool { return t.Corner != nil }

// Clone returns a copy that shares no slices with t.
func (t FurnitureTemplate) Clone() FurnitureTemplate {
	cp := t
	cp.Components = append([]Component(nil), t.Components...)
	cp.AvailableColors = append([]Color(nil), t.AvailableColors...)
	cp.AvailableMaterials = append([]Material(nil), t.AvailableMaterials...)
	if t.Corner != nil {
		c := *t.Corner
		c.Components = append([]Component(nil), t.Corner.Components...)
		cp.Corner = &c
	}
	return cp
}

// MaterialByID ищет материал среди доступных для шаблона
func (t FurnitureTemplate) MaterialByID(id string) (Material, bool) {
	for _, m := range t.AvailableMaterials {
		if m.ID == id {
			return m, true
		}
	}
	return Material{}, false
}

// ColorByName ищет цвет среди доступных для шаблона
func (t FurnitureTemplate) ColorByName(name string) (Color, bool) {
	for _, c := range t.AvailableColors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// OrderStatus тип статуса заказа
type OrderStatus string

const (
	OrderStatusNew              OrderStatus = "New"
	OrderStatusInProduction     OrderStatus = "In Production"
	OrderStatusReadyForDelivery OrderStatus = "Ready for Delivery"
	OrderStatusOnTheWay         OrderStatus = "On the Way"
	OrderStatusDelivered        OrderStatus = "Delivered"
	OrderStatusCancelled        OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in workflow order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusNew,
		OrderStatusInProduction,
		OrderStatusReadyForDelivery,
		OrderStatusOnTheWay,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ParseOrderStatus accepts the display value of a status.
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown order status %q", ErrValidation, s)
}

// OrderDateLayout формат поля Date заказа
const OrderDateLayout = "2006-01-02"

// Order сущность заказа; Items снимок комнаты на момент отправки
type Order struct {
	ID         string       `json:"id"`
	Date       string       `json:"date"`
	TotalPrice float64      `json:"total_price"`
	Status     OrderStatus  `json:"status"`
	Items      []PlacedItem `json:"items"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Clone deep-copies the order including its item snapshot.
func (o Order) Clone() Order {
	cp := o
	cp.Items = CloneItems(o.Items)
	return cp
}
