// Package room holds the editable room: its dimensions, the furniture placed
// in it, the current selection and the order submission that empties it.
package room

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
)

var (
	// ErrEmptyRoom is returned by SubmitOrder when nothing is placed.
	ErrEmptyRoom = fmt.Errorf("%w: your room is empty, add some furniture before ordering", domain.ErrValidation)
	// ErrSubmitInFlight is returned while a previous submission is outstanding.
	ErrSubmitInFlight = fmt.Errorf("%w: an order is already being submitted", domain.ErrValidation)
)

// OrderSubmitter принимает заказ и возвращает его с серверной ценой
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, items []domain.PlacedItem, clientTotal float64) (*domain.Order, error)
}

// Room модель комнаты и расставленной мебели
type Room struct {
	mu       sync.RWMutex
	dims     domain.RoomDimensions
	items    []domain.PlacedItem
	selected string
	markup   float64

	submitter  OrderSubmitter
	submitting atomic.Bool
	newID      func() string
	log        *zap.Logger
}

// Option настраивает Room
type Option func(*Room)

// WithDimensions overrides the default 5 x 4 x 2.5 m room.
func WithDimensions(d domain.RoomDimensions) Option {
	return func(r *Room) { r.dims = d }
}

// WithIDGenerator replaces the uuid instance id source.
func WithIDGenerator(f func() string) Option {
	return func(r *Room) { r.newID = f }
}

// New creates an empty room priced with the given labor markup.
func New(submitter OrderSubmitter, markup float64, log *zap.Logger, opts ...Option) *Room {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Room{
		dims:      domain.DefaultRoom,
		markup:    markup,
		submitter: submitter,
		newID:     uuid.NewString,
		log:       log.Named("room"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Room) Dimensions() domain.RoomDimensions {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.dims
}

// SetDimension replaces one axis. Placed items are not moved, even if they
// end up outside the new walls.
func (r *Room) SetDimension(axis domain.Axis, meters float64) error {
	if meters <= 0 {
		return fmt.Errorf("%w: room %s must be positive", domain.ErrValidation, axis)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	d, err := r.dims.With(axis, meters)
	if err != nil {
		return err
	}
	r.dims = d
	return nil
}

// Markup returns the labor markup used for local prices.
func (r *Room) Markup() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.markup
}

// SetMarkup updates the labor markup after the catalog changed it.
func (r *Room) SetMarkup(v float64) {
	r.mu.Lock()
	r.markup = v
	r.mu.Unlock()
}

// AddItem places a new instance of t at the room centre on the floor and
// selects it.
func (r *Room) AddItem(t domain.FurnitureTemplate) domain.PlacedItem {
	r.mu.Lock()
	defer r.mu.Unlock()
	it := domain.NewPlacedItem(t, r.newID())
	r.items = append(r.items, it)
	r.selected = it.InstanceID
	r.log.Debug("item added", zap.String("instance_id", it.InstanceID), zap.String("template_id", t.ID))
	return it.Clone()
}

// Items returns copies of the placed items in insertion order.
func (r *Room) Items() []domain.PlacedItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.CloneItems(r.items)
}

func (r *Room) Item(id string) (domain.PlacedItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return domain.PlacedItem{}, false
	}
	return r.items[i].Clone(), true
}

// caller holds the lock
func (r *Room) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].InstanceID == id {
			return i
		}
	}
	return -1
}

func notFound(id string) error {
	return fmt.Errorf("%w: placed item %q", domain.ErrNotFound, id)
}

// UpdateItemPosition overwrites the position as given. Wall constraints are
// enforced by the interaction controller before it calls this.
func (r *Room) UpdateItemPosition(id string, pos domain.Vec3) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	r.items[i].Position = pos
	return nil
}

// UpdateItemProperty applies a single customization. Values are not checked
// against the template ranges.
func (r *Room) UpdateItemProperty(id string, u Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	next := r.items[i].Clone()
	if err := u.apply(&next); err != nil {
		return err
	}
	r.items[i] = next
	return nil
}

// RemoveItem deletes an item and clears the selection if it pointed at it.
func (r *Room) RemoveItem(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return notFound(id)
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	if r.selected == id {
		r.selected = ""
	}
	return nil
}

// Select marks id as the selected item. Unknown ids are rejected.
func (r *Room) Select(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(id) < 0 {
		return notFound(id)
	}
	r.selected = id
	return nil
}

func (r *Room) ClearSelection() {
	r.mu.Lock()
	r.selected = ""
	r.mu.Unlock()
}

// Selected returns the selected instance id, if any.
func (r *Room) Selected() (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.selected, r.selected != ""
}

func (r *Room) ItemPrice(id string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return 0, notFound(id)
	}
	return pricing.ItemPrice(r.items[i], r.markup), nil
}

// TotalPrice sums the item prices; it is recomputed on every call.
func (r *Room) TotalPrice() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pricing.Total(r.items, r.markup)
}

// Submitting reports whether an order submission is outstanding.
func (r *Room) Submitting() bool {
	return r.submitting.Load()
}

// SubmitOrder sends the placed items and their local total to the order
// service. On success the room is emptied; on failure it is left untouched.
// The room lock is not held while waiting for the submitter.
func (r *Room) SubmitOrder(ctx context.Context) (*domain.Order, error) {
	if !r.submitting.CompareAndSwap(false, true) {
		return nil, ErrSubmitInFlight
	}
	defer r.submitting.Store(false)

	r.mu.RLock()
	items := domain.CloneItems(r.items)
	total := pricing.Total(r.items, r.markup)
	r.mu.RUnlock()

	if len(items) == 0 {
		return nil, ErrEmptyRoom
	}

	order, err := r.submitter.SubmitOrder(ctx, items, total)
	if err != nil {
		level := zap.ErrorLevel
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrTransient) {
			level = zap.WarnLevel
		}
		r.log.Log(level, "order submission failed", zap.Error(err), zap.Int("items", len(items)))
		return nil, err
	}

	r.clearSubmitted(items)

	if order.TotalPrice != total {
		r.log.Info("server repriced order",
			zap.String("order_id", order.ID),
			zap.Float64("local_total", total),
			zap.Float64("order_total", order.TotalPrice),
		)
	}
	return order, nil
}

// clearSubmitted removes the submitted instances. Items added while the
// submission was outstanding stay in the room.
func (r *Room) clearSubmitted(submitted []domain.PlacedItem) {
	gone := make(map[string]struct{}, len(submitted))
	for _, it := range submitted {
		gone[it.InstanceID] = struct{}{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.items[:0]
	for _, it := range r.items {
		if _, ok := gone[it.InstanceID]; !ok {
			kept = append(kept, it)
		}
	}
	r.items = kept
	if _, ok := gone[r.selected]; ok || len(kept) == 0 {
		r.selected = ""
	}
}
