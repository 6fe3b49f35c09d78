package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
	"roomcraft/internal/repository"
)

type fixture struct {
	store   *repository.MemoryStore
	catalog *CatalogService
	orders  *OrderService
	logs    *observer.ObservedLogs
}

func setup(t *testing.T) fixture {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)
	store := repository.NewMemoryStore()
	store.Seed(repository.DefaultCatalog())
	ordersRepo := repository.NewMemoryOrders(store)
	tx := repository.NewMemoryTx(store)
	return fixture{
		store:   store,
		catalog: NewCatalogService(store, tx, log),
		orders:  NewOrderService(store, ordersRepo, tx, log),
		logs:    logs,
	}
}

// panel is a one square meter board priced at 95 with no markup.
func panel() domain.FurnitureTemplate {
	return domain.FurnitureTemplate{
		Name:               "Panel",
		Category:           domain.CategoryHallway,
		Components:         []domain.Component{{Name: "Board", Width: 100, Length: 100}},
		Width:              domain.DimensionRange{Min: 50, Max: 200, Default: 100},
		Length:             domain.DimensionRange{Min: 50, Max: 200, Default: 100},
		Height:             domain.DimensionRange{Min: 1, Max: 5, Default: 2},
		AvailableColors:    []domain.Color{{Name: "White", Hex: "#FFFFFF"}},
		AvailableMaterials: []domain.Material{{ID: "p95", Name: "Board", PricePerSqMeter: 95}},
	}
}

func TestSubmitOrder_EmptyRoomRejected(t *testing.T) {
	f := setup(t)
	o, err := f.orders.SubmitOrder(context.Background(), nil, 0)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, o)

	list, err := f.orders.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSubmitOrder_ServerTotalWins(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	c := repository.DefaultCatalog()
	c.Materials = append(c.Materials, panel().AvailableMaterials...)
	c.Markup = 0
	f.store.Seed(c)
	tpl, err := f.catalog.CreateFurniture(ctx, panel())
	require.NoError(t, err)

	item := domain.NewPlacedItem(*tpl, "i1")
	o, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{item}, 100)
	require.NoError(t, err)

	assert.Equal(t, 95.0, o.TotalPrice)
	assert.Equal(t, domain.OrderStatusNew, o.Status)
	assert.NotEmpty(t, o.ID)
	assert.NotEmpty(t, o.Date)

	warns := f.logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warns, 1)
	assert.Equal(t, 100.0, warns[0].ContextMap()["client_total"])
	assert.Equal(t, 95.0, warns[0].ContextMap()["server_total"])
}

func TestSubmitOrder_SmallDriftNotLogged(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	tpl, err := f.catalog.GetFurniture(ctx, "lv-sofa-1")
	require.NoError(t, err)
	item := domain.NewPlacedItem(*tpl, "s1")
	want := pricing.ItemPrice(item, 0.30)

	o, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{item}, want+0.5)
	require.NoError(t, err)
	assert.Equal(t, want, o.TotalPrice)
	assert.Zero(t, f.logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestSubmitOrder_UsesCatalogPrices(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	tpl, err := f.catalog.GetFurniture(ctx, "br-wardrobe-1")
	require.NoError(t, err)
	item := domain.NewPlacedItem(*tpl, "w1")
	// a tampered client snapshot must not lower the price
	item.CustomMaterial.PricePerSqMeter = 1
	item.Template.Components = nil

	honest := domain.NewPlacedItem(*tpl, "w1")
	want := pricing.ItemPrice(honest, 0.30)

	o, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{item}, 1)
	require.NoError(t, err)
	assert.Equal(t, want, o.TotalPrice)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 50.0, o.Items[0].CustomMaterial.PricePerSqMeter)
	assert.Len(t, o.Items[0].Template.Components, 10)
}

func TestSubmitOrder_UnknownReferences(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	tpl, err := f.catalog.GetFurniture(ctx, "lv-sofa-1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*domain.PlacedItem)
	}{
		{"template", func(it *domain.PlacedItem) { it.TemplateID = "ghost" }},
		{"material not offered", func(it *domain.PlacedItem) { it.CustomMaterial.ID = "m3" }},
		{"material unknown", func(it *domain.PlacedItem) { it.CustomMaterial.ID = "m99" }},
		{"color not offered", func(it *domain.PlacedItem) { it.CustomColor.Name = "Walnut" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := domain.NewPlacedItem(*tpl, "x")
			tt.mutate(&item)
			_, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{item}, 0)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	list, _ := f.orders.ListOrders(ctx)
	assert.Empty(t, list)
}

func TestSubmitOrder_TransientFailure(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore(repository.WithSimulator(repository.NewSimulator(0, 0, 1, 3)))
	store.Seed(repository.DefaultCatalog())
	svc := NewOrderService(store, repository.NewMemoryOrders(store), repository.NewMemoryTx(store), nil)

	item := domain.NewPlacedItem(repository.DefaultCatalog().Templates[0], "a")
	_, err := svc.SubmitOrder(ctx, []domain.PlacedItem{item}, 0)
	require.ErrorIs(t, err, domain.ErrTransient)
}

func TestSubmitOrder_KeepsCornerAndCustomDimensions(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	tpl, err := f.catalog.GetFurniture(ctx, "lv-sofa-1")
	require.NoError(t, err)
	item := domain.NewPlacedItem(*tpl, "c1")
	item.CustomWidth = 260
	item.Corner.Enabled = true
	item.Corner.Length = 200
	item.CustomColor = domain.Color{Name: "Graphite"}
	item.Position = domain.Vec3{X: 1, Y: 0.4, Z: -1}

	o, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{item}, 0)
	require.NoError(t, err)
	got := o.Items[0]
	assert.Equal(t, 260.0, got.CustomWidth)
	assert.True(t, got.IsCorner())
	assert.Equal(t, 200.0, got.CornerLength())
	assert.Equal(t, 15.0, got.CustomColor.AdditionalCostPerSqMeter)
	assert.Equal(t, domain.Vec3{X: 1, Y: 0.4, Z: -1}, got.Position)
}

func TestOrders_ListAndStatus(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	tpl, _ := f.catalog.GetFurniture(ctx, "ki-cabinet-1")

	first, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{domain.NewPlacedItem(*tpl, "a")}, 0)
	require.NoError(t, err)
	second, err := f.orders.SubmitOrder(ctx, []domain.PlacedItem{domain.NewPlacedItem(*tpl, "b")}, 0)
	require.NoError(t, err)

	list, err := f.orders.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)

	// any transition is allowed, including backwards
	o, err := f.orders.UpdateOrderStatus(ctx, first.ID, domain.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, o.Status)
	o, err = f.orders.UpdateOrderStatus(ctx, first.ID, domain.OrderStatusNew)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusNew, o.Status)

	got, err := f.orders.GetOrder(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusNew, got.Status)

	_, err = f.orders.UpdateOrderStatus(ctx, first.ID, "Lost")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.orders.UpdateOrderStatus(ctx, "ORD-ghost", domain.OrderStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.orders.GetOrder(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
