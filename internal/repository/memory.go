package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"roomcraft/internal/domain"
)

// MemoryStore объединённое in-memory хранилище каталога и заказов
type MemoryStore struct {
	mu sync.RWMutex

	templatesByID map[string]domain.FurnitureTemplate
	templateOrder []string
	materials     []domain.Material
	colors        []domain.Color
	markup        float64

	ordersByID map[string]domain.Order
	orderSeq   []string // insertion order, oldest first

	sim *Simulator
	now func() time.Time
}

// Option настраивает MemoryStore
type Option func(*MemoryStore)

// WithSimulator injects artificial latency and transient failures.
func WithSimulator(sim *Simulator) Option {
	return func(m *MemoryStore) { m.sim = sim }
}

// WithClock overrides the time source used for generated ids and timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *MemoryStore) { m.now = now }
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	m := &MemoryStore{
		templatesByID: make(map[string]domain.FurnitureTemplate),
		ordersByID:    make(map[string]domain.Order),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// begin runs the simulated network round trip. Inside a transaction the
// trip was already paid by WithTransaction.
func (m *MemoryStore) begin(ctx context.Context) error {
	if isTx(ctx) {
		return nil
	}
	return m.sim.Do(ctx)
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ CatalogRepository = (*MemoryStore)(nil)

// CatalogRepository implementation

func (m *MemoryStore) CreateTemplate(ctx context.Context, t *domain.FurnitureTemplate) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	t.ID = m.templateID(*t)
	m.templatesByID[t.ID] = t.Clone()
	m.templateOrder = append(m.templateOrder, t.ID)
	return nil
}

// templateID builds "<category prefix>-<slug>-<unix millis>", e.g.
// "li-modern-sofa-1700000000000". Caller holds the write lock.
func (m *MemoryStore) templateID(t domain.FurnitureTemplate) string {
	prefix := strings.ToLower(string(t.Category))
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	slug := strings.ToLower(strings.Join(strings.Fields(t.Name), "-"))
	id := fmt.Sprintf("%s-%s-%d", prefix, slug, m.now().UnixMilli())
	if _, taken := m.templatesByID[id]; taken {
		id += "-" + uuid.NewString()[:8]
	}
	return id
}

func (m *MemoryStore) GetTemplate(ctx context.Context, id string) (*domain.FurnitureTemplate, error) {
	if err := m.begin(ctx); err != nil {
		return nil, err
	}
	m.rlock(ctx)
	defer m.runlock(ctx)
	t, ok := m.templatesByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: furniture %q", ErrNotFound, id)
	}
	cp := t.Clone()
	return &cp, nil
}

func (m *MemoryStore) UpdateTemplate(ctx context.Context, t *domain.FurnitureTemplate) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.templatesByID[t.ID]; !ok {
		return fmt.Errorf("%w: furniture %q", ErrNotFound, t.ID)
	}
	m.templatesByID[t.ID] = t.Clone()
	return nil
}

func (m *MemoryStore) DeleteTemplate(ctx context.Context, id string) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.templatesByID[id]; !ok {
		return fmt.Errorf("%w: furniture %q", ErrNotFound, id)
	}
	delete(m.templatesByID, id)
	for i, tid := range m.templateOrder {
		if tid == id {
			m.templateOrder = append(m.templateOrder[:i], m.templateOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryStore) ListTemplates(ctx context.Context, f TemplateFilter) ([]domain.FurnitureTemplate, error) {
	if err := m.begin(ctx); err != nil {
		return nil, err
	}
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.FurnitureTemplate, 0, len(m.templateOrder))
	for _, id := range m.templateOrder {
		t := m.templatesByID[id]
		if f.Category != nil && t.Category != *f.Category {
			continue
		}
		out = append(out, t.Clone())
	}
	return out, nil
}

func (m *MemoryStore) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	if err := m.begin(ctx); err != nil {
		return nil, err
	}
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]domain.Material{}, m.materials...), nil
}

// UpsertMaterial replaces the material with the same id or appends it under
// a generated "m-" id; an id that matches nothing is not kept.
func (m *MemoryStore) UpsertMaterial(ctx context.Context, mat *domain.Material) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for i := range m.materials {
		if mat.ID != "" && m.materials[i].ID == mat.ID {
			m.materials[i] = *mat
			return nil
		}
	}
	mat.ID = "m-" + uuid.NewString()[:8]
	m.materials = append(m.materials, *mat)
	return nil
}

// DeleteMaterial removes a material; unknown ids are ignored.
func (m *MemoryStore) DeleteMaterial(ctx context.Context, id string) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	kept := m.materials[:0]
	for _, mat := range m.materials {
		if mat.ID != id {
			kept = append(kept, mat)
		}
	}
	m.materials = kept
	return nil
}

func (m *MemoryStore) ListColors(ctx context.Context) ([]domain.Color, error) {
	if err := m.begin(ctx); err != nil {
		return nil, err
	}
	m.rlock(ctx)
	defer m.runlock(ctx)
	return append([]domain.Color{}, m.colors...), nil
}

// UpsertColor replaces the color with the same name or appends it.
func (m *MemoryStore) UpsertColor(ctx context.Context, c *domain.Color) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	for i := range m.colors {
		if m.colors[i].Name == c.Name {
			m.colors[i] = *c
			return nil
		}
	}
	m.colors = append(m.colors, *c)
	return nil
}

// DeleteColor removes a color by name; unknown names are ignored.
func (m *MemoryStore) DeleteColor(ctx context.Context, name string) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	kept := m.colors[:0]
	for _, c := range m.colors {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	m.colors = kept
	return nil
}

func (m *MemoryStore) LaborMarkup(ctx context.Context) (float64, error) {
	if err := m.begin(ctx); err != nil {
		return 0, err
	}
	m.rlock(ctx)
	defer m.runlock(ctx)
	return m.markup, nil
}

func (m *MemoryStore) SetLaborMarkup(ctx context.Context, v float64) error {
	if err := m.begin(ctx); err != nil {
		return err
	}
	m.wlock(ctx)
	defer m.wunlock(ctx)
	m.markup = v
	return nil
}

// OrderRepository implementation on wrapper type
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

// Create stores a snapshot of o. An empty ID gets "ORD-<unix millis>-<suffix>".
func (mo *MemoryOrders) Create(ctx context.Context, o *domain.Order) error {
	if err := mo.store.begin(ctx); err != nil {
		return err
	}
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	now := mo.store.now().UTC()
	if o.ID == "" {
		o.ID = fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
	}
	if _, exists := mo.store.ordersByID[o.ID]; exists {
		return fmt.Errorf("%w: order %q already exists", domain.ErrValidation, o.ID)
	}
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Date == "" {
		o.Date = now.Format(domain.OrderDateLayout)
	}
	mo.store.ordersByID[o.ID] = o.Clone()
	mo.store.orderSeq = append(mo.store.orderSeq, o.ID)
	return nil
}

func (mo *MemoryOrders) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if err := mo.store.begin(ctx); err != nil {
		return nil, err
	}
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	o, ok := mo.store.ordersByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: order %q", ErrNotFound, id)
	}
	cp := o.Clone()
	return &cp, nil
}

func (mo *MemoryOrders) Update(ctx context.Context, o *domain.Order) error {
	if err := mo.store.begin(ctx); err != nil {
		return err
	}
	mo.store.wlock(ctx)
	defer mo.store.wunlock(ctx)
	if _, ok := mo.store.ordersByID[o.ID]; !ok {
		return fmt.Errorf("%w: order %q", ErrNotFound, o.ID)
	}
	o.UpdatedAt = mo.store.now().UTC()
	mo.store.ordersByID[o.ID] = o.Clone()
	return nil
}

func (mo *MemoryOrders) List(ctx context.Context) ([]domain.Order, error) {
	if err := mo.store.begin(ctx); err != nil {
		return nil, err
	}
	mo.store.rlock(ctx)
	defer mo.store.runlock(ctx)
	out := make([]domain.Order, 0, len(mo.store.orderSeq))
	for i := len(mo.store.orderSeq) - 1; i >= 0; i-- {
		out = append(out, mo.store.ordersByID[mo.store.orderSeq[i]].Clone())
	}
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if isTx(ctx) {
		return fn(ctx)
	}
	if err := tx.store.sim.Do(ctx); err != nil {
		return err
	}
	// Для in-memory используем блокировку записи и помечаем контекст, чтобы репозитории пропускали внутренние локи
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
