package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"roomcraft/internal/domain"
)

func fixedClock() func() time.Time {
	t0 := time.Date(2025, 9, 28, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return t0 }
}

func chair() domain.FurnitureTemplate {
	return domain.FurnitureTemplate{
		Name:               "Reading Chair",
		Category:           domain.CategoryLibrary,
		Components:         []domain.Component{{Name: "Seat", Width: 60, Length: 60}},
		Width:              domain.DimensionRange{Min: 50, Max: 80, Default: 60},
		Length:             domain.DimensionRange{Min: 50, Max: 80, Default: 60},
		Height:             domain.DimensionRange{Min: 80, Max: 110, Default: 95},
		AvailableColors:    []domain.Color{{Name: "White"}},
		AvailableMaterials: []domain.Material{{ID: "m1", Name: "MDF", PricePerSqMeter: 50}},
	}
}

func TestMemoryStore_TemplateCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithClock(fixedClock()))

	tpl := chair()
	if err := store.CreateTemplate(ctx, &tpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	if tpl.ID != "li-reading-chair-1759060800000" {
		t.Fatalf("unexpected id %q", tpl.ID)
	}

	got, err := store.GetTemplate(ctx, tpl.ID)
	if err != nil || got.ID != tpl.ID {
		t.Fatalf("get: %v", err)
	}

	tpl.Width.Default = 70
	if err := store.UpdateTemplate(ctx, &tpl); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = store.GetTemplate(ctx, tpl.ID)
	if got.Width.Default != 70 {
		t.Fatalf("update not applied")
	}

	if err := store.DeleteTemplate(ctx, tpl.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetTemplate(ctx, tpl.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := store.DeleteTemplate(ctx, tpl.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	missing := chair()
	missing.ID = "nope"
	if err := store.UpdateTemplate(ctx, &missing); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}

func TestMemoryStore_TemplateIDCollision(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithClock(fixedClock()))
	a, b := chair(), chair()
	if err := store.CreateTemplate(ctx, &a); err != nil {
		t.Fatal(err)
	}
	if err := store.CreateTemplate(ctx, &b); err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids collide: %q", a.ID)
	}
}

func TestMemoryStore_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(DefaultCatalog())

	got, err := store.GetTemplate(ctx, "lv-sofa-1")
	if err != nil {
		t.Fatal(err)
	}
	got.Components[0].Width = 1
	got.Corner.Components[0].Width = 1

	again, _ := store.GetTemplate(ctx, "lv-sofa-1")
	if again.Components[0].Width != 220 || again.Corner.Components[0].Width != 180 {
		t.Fatalf("store mutated through returned copy")
	}
}

func TestListTemplates_CategoryFilterKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(DefaultCatalog())

	all, _ := store.ListTemplates(ctx, TemplateFilter{})
	if len(all) != 3 || all[0].ID != "lv-sofa-1" || all[2].ID != "ki-cabinet-1" {
		t.Fatalf("unexpected list %v", all)
	}

	kitchen := domain.CategoryKitchen
	list, _ := store.ListTemplates(ctx, TemplateFilter{Category: &kitchen})
	if len(list) != 1 || list[0].ID != "ki-cabinet-1" {
		t.Fatalf("category filter failed: %v", list)
	}

	kids := domain.CategoryKids
	list, _ = store.ListTemplates(ctx, TemplateFilter{Category: &kids})
	if len(list) != 0 {
		t.Fatalf("expected empty list")
	}
}

func TestMaterialsAndColors_Upsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(DefaultCatalog())

	mdf := domain.Material{ID: "m1", Name: "MDF", PricePerSqMeter: 55}
	if err := store.UpsertMaterial(ctx, &mdf); err != nil {
		t.Fatal(err)
	}
	fresh := domain.Material{Name: "Bamboo", PricePerSqMeter: 90}
	if err := store.UpsertMaterial(ctx, &fresh); err != nil {
		t.Fatal(err)
	}
	if fresh.ID == "" {
		t.Fatalf("no id generated")
	}
	cork := domain.Material{ID: "client-made", Name: "Cork", PricePerSqMeter: 40}
	if err := store.UpsertMaterial(ctx, &cork); err != nil {
		t.Fatal(err)
	}
	if cork.ID == "client-made" || !strings.HasPrefix(cork.ID, "m-") {
		t.Fatalf("unknown id must be replaced by a generated one, got %q", cork.ID)
	}
	mats, _ := store.ListMaterials(ctx)
	if len(mats) != 6 || mats[0].PricePerSqMeter != 55 || mats[4].Name != "Bamboo" {
		t.Fatalf("unexpected materials %v", mats)
	}
	if err := store.DeleteMaterial(ctx, "m1"); err != nil {
		t.Fatal(err)
	}
	if err := store.DeleteMaterial(ctx, "unknown"); err != nil {
		t.Fatalf("unknown delete must be a no-op, got %v", err)
	}
	mats, _ = store.ListMaterials(ctx)
	if len(mats) != 5 {
		t.Fatalf("expected 5 materials, got %d", len(mats))
	}

	oak := domain.Color{Name: "Oak", Hex: "#b99564", AdditionalCostPerSqMeter: 30}
	if err := store.UpsertColor(ctx, &oak); err != nil {
		t.Fatal(err)
	}
	colors, _ := store.ListColors(ctx)
	if len(colors) != 6 || colors[2].AdditionalCostPerSqMeter != 30 {
		t.Fatalf("color upsert by name failed: %v", colors)
	}
	if err := store.DeleteColor(ctx, "Oak"); err != nil {
		t.Fatal(err)
	}
	colors, _ = store.ListColors(ctx)
	if len(colors) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(colors))
	}
}

func TestLaborMarkup(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(DefaultCatalog())
	v, _ := store.LaborMarkup(ctx)
	if v != 0.30 {
		t.Fatalf("seed markup %v", v)
	}
	_ = store.SetLaborMarkup(ctx, 0.45)
	v, _ = store.LaborMarkup(ctx)
	if v != 0.45 {
		t.Fatalf("markup %v", v)
	}
}

func TestMemoryOrders_ListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	orders := NewMemoryOrders(store)

	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		o := domain.Order{ID: id, Status: domain.OrderStatusNew}
		if err := orders.Create(ctx, &o); err != nil {
			t.Fatal(err)
		}
	}
	list, err := orders.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].ID != "ORD-3" || list[2].ID != "ORD-1" {
		t.Fatalf("unexpected order %v", list)
	}

	dup := domain.Order{ID: "ORD-2"}
	if err := orders.Create(ctx, &dup); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}

func TestMemoryOrders_SnapshotAndUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithClock(fixedClock()))
	orders := NewMemoryOrders(store)

	items := []domain.PlacedItem{domain.NewPlacedItem(DefaultCatalog().Templates[0], "a")}
	o := domain.Order{Items: items, Status: domain.OrderStatusNew, TotalPrice: 10}
	if err := orders.Create(ctx, &o); err != nil {
		t.Fatal(err)
	}
	if o.Date != "2025-09-28" {
		t.Fatalf("unexpected date %q", o.Date)
	}

	// mutating the caller's slice must not leak into the stored order
	items[0].CustomWidth = 1

	got, err := orders.GetByID(ctx, o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Items[0].CustomWidth != 220 {
		t.Fatalf("stored snapshot mutated")
	}

	got.Status = domain.OrderStatusDelivered
	if err := orders.Update(ctx, got); err != nil {
		t.Fatal(err)
	}
	again, _ := orders.GetByID(ctx, o.ID)
	if again.Status != domain.OrderStatusDelivered {
		t.Fatalf("status not updated")
	}

	ghost := domain.Order{ID: "ORD-ghost"}
	if err := orders.Update(ctx, &ghost); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMemoryTx_NestedCallsSkipLocks(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	store.Seed(DefaultCatalog())
	tx := NewMemoryTx(store)
	orders := NewMemoryOrders(store)

	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		markup, err := store.LaborMarkup(ctx)
		if err != nil {
			return err
		}
		if _, err := store.GetTemplate(ctx, "br-wardrobe-1"); err != nil {
			return err
		}
		o := domain.Order{TotalPrice: markup}
		return orders.Create(ctx, &o)
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}
	list, _ := orders.List(ctx)
	if len(list) != 1 {
		t.Fatalf("order not created")
	}
}

func TestSimulator_InjectsTransientErrors(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(WithSimulator(NewSimulator(0, 0, 1, 42)))
	if _, err := store.ListMaterials(ctx); !errors.Is(err, domain.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	tx := NewMemoryTx(store)
	called := false
	err := tx.WithTransaction(ctx, func(context.Context) error { called = true; return nil })
	if !errors.Is(err, domain.ErrTransient) || called {
		t.Fatalf("transaction must fail before running fn")
	}
}

func TestSimulator_HonorsContext(t *testing.T) {
	sim := NewSimulator(time.Hour, time.Hour, 0, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sim.Do(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestSimulator_LatencyWithinBounds(t *testing.T) {
	sim := NewSimulator(time.Millisecond, 3*time.Millisecond, 0, 7)
	for i := 0; i < 50; i++ {
		d, fail := sim.draw()
		if fail {
			t.Fatalf("error rate 0 must never fail")
		}
		if d < time.Millisecond || d >= 3*time.Millisecond {
			t.Fatalf("delay %v out of bounds", d)
		}
	}
	var nilSim *Simulator
	if err := nilSim.Do(context.Background()); err != nil {
		t.Fatalf("nil simulator must be a no-op")
	}
}
