package interaction

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomcraft/internal/domain"
)

const eps = 1e-9

func box(w, l, h float64) domain.PlacedItem {
	return domain.PlacedItem{
		InstanceID:   "box",
		CustomWidth:  w,
		CustomLength: l,
		CustomHeight: h,
		Position:     domain.Vec3{Y: domain.FloorY(h)},
	}
}

func cornerUnit(w, l, cl float64) domain.PlacedItem {
	it := box(w, l, 80)
	it.Corner = &domain.CornerConfig{Enabled: true, Length: cl}
	return it
}

func assertRect(t *testing.T, want, got Rect) {
	t.Helper()
	assert.InDelta(t, want.MinX, got.MinX, eps, "min x")
	assert.InDelta(t, want.MaxX, got.MaxX, eps, "max x")
	assert.InDelta(t, want.MinZ, got.MinZ, eps, "min z")
	assert.InDelta(t, want.MaxZ, got.MaxZ, eps, "max z")
}

func TestFootprint_Box(t *testing.T) {
	it := box(220, 90, 80)
	assertRect(t, Rect{MinX: -1.1, MaxX: 1.1, MinZ: -0.45, MaxZ: 0.45}, Footprint(it))

	it.Rotation = 90
	assertRect(t, Rect{MinX: -0.45, MaxX: 0.45, MinZ: -1.1, MaxZ: 1.1}, Footprint(it))

	it = box(100, 100, 80)
	it.Rotation = 45
	d := math.Sqrt2 / 2
	assertRect(t, Rect{MinX: -d, MaxX: d, MinZ: -d, MaxZ: d}, Footprint(it))
}

func TestFootprint_CornerCompoundIsRecentred(t *testing.T) {
	it := cornerUnit(220, 90, 180)

	wings := Wings(it)
	require.Len(t, wings, 2)
	// main wing spans x [-0.45, 1.75], corner wing z [-1.35, 0.45] before
	// recentring on (0.65, -0.45)
	assert.InDelta(t, 0.0, wings[0].Center.X, eps)
	assert.InDelta(t, 0.45, wings[0].Center.Z, eps)
	assert.InDelta(t, -0.65, wings[1].Center.X, eps)
	assert.InDelta(t, 0.0, wings[1].Center.Z, eps)

	assertRect(t, Rect{MinX: -1.1, MaxX: 1.1, MinZ: -0.9, MaxZ: 0.9}, Footprint(it))

	it.Rotation = 90
	assertRect(t, Rect{MinX: -0.9, MaxX: 0.9, MinZ: -1.1, MaxZ: 1.1}, Footprint(it))

	it.Corner.Enabled = false
	it.Rotation = 0
	assert.Len(t, Wings(it), 1)
	assertRect(t, Rect{MinX: -1.1, MaxX: 1.1, MinZ: -0.45, MaxZ: 0.45}, Footprint(it))
}

func TestConstrain(t *testing.T) {
	room := domain.DefaultRoom
	fp := Footprint(box(220, 90, 80))

	tests := []struct {
		name string
		in   domain.Vec3
		snap bool
		want domain.Vec3
	}{
		{"inside untouched", domain.Vec3{X: 0.3, Y: 0.4, Z: -0.7}, false, domain.Vec3{X: 0.3, Y: 0.4, Z: -0.7}},
		{"max walls", domain.Vec3{X: 3, Y: 0.4, Z: 3}, false, domain.Vec3{X: 1.4, Y: 0.4, Z: 1.55}},
		{"min walls", domain.Vec3{X: -3, Y: 0.4, Z: -3}, false, domain.Vec3{X: -1.4, Y: 0.4, Z: -1.55}},
		{"snap inside", domain.Vec3{X: 0.3, Y: 0.4, Z: -0.7}, true, domain.Vec3{X: 0.25, Y: 0.4, Z: -0.75}},
		{"snap steps back from max wall", domain.Vec3{X: 3, Y: 0.4, Z: 3}, true, domain.Vec3{X: 1.25, Y: 0.4, Z: 1.5}},
		{"snap steps back from min wall", domain.Vec3{X: -3, Y: 0.4, Z: -3}, true, domain.Vec3{X: -1.25, Y: 0.4, Z: -1.5}},
		{"half rounds up", domain.Vec3{X: -0.125, Y: 0.4, Z: 0.125}, true, domain.Vec3{X: 0, Y: 0.4, Z: 0.25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Constrain(tt.in, fp, room, tt.snap)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Z, got.Z, eps)
			assert.Equal(t, tt.want.Y, got.Y)
		})
	}
}

func TestConstrain_ItemWiderThanRoom(t *testing.T) {
	room := domain.RoomDimensions{Width: 2, Length: 4, Height: 2.5}
	fp := Footprint(box(220, 90, 80))
	// only the min wall is crossed: flush with it, and no grid line fits so
	// the snap is skipped
	got := Constrain(domain.Vec3{X: -0.6}, fp, room, true)
	assert.InDelta(t, 0.1, got.X, eps)

	// both walls crossed: the max wall wins
	got = Constrain(domain.Vec3{X: 0}, fp, room, true)
	assert.InDelta(t, -0.1, got.X, eps)

	got = Constrain(domain.Vec3{X: 0.6}, fp, room, false)
	assert.InDelta(t, -0.1, got.X, eps)
}

func TestConstrain_KeepsBoxInsideAndOnGrid(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	room := domain.DefaultRoom
	for i := 0; i < 2000; i++ {
		var it domain.PlacedItem
		if rnd.IntN(2) == 0 {
			it = box(50+rnd.Float64()*200, 30+rnd.Float64()*70, 80)
		} else {
			it = cornerUnit(50+rnd.Float64()*200, 30+rnd.Float64()*70, 50+rnd.Float64()*150)
		}
		it.Rotation = rnd.Float64() * 360
		fp := Footprint(it)
		in := domain.Vec3{X: (rnd.Float64() - 0.5) * 12, Z: (rnd.Float64() - 0.5) * 12}

		for _, snap := range []bool{false, true} {
			got := Constrain(in, fp, room, snap)
			require.GreaterOrEqual(t, got.X+fp.MinX, -room.Width/2-1e-6)
			require.LessOrEqual(t, got.X+fp.MaxX, room.Width/2+1e-6)
			require.GreaterOrEqual(t, got.Z+fp.MinZ, -room.Length/2-1e-6)
			require.LessOrEqual(t, got.Z+fp.MaxZ, room.Length/2+1e-6)
			if snap {
				require.True(t, onGrid(got.X), "x %v not on grid", got.X)
				require.True(t, onGrid(got.Z), "z %v not on grid", got.Z)
			}
		}
	}
}

func onGrid(v float64) bool {
	q := v / GridStep
	return math.Abs(q-math.Round(q)) < 1e-6
}
