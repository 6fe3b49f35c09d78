package interaction

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"roomcraft/internal/domain"
)

// GridStep шаг сетки привязки в метрах
const GridStep = 0.25

// Wing одна коробка изделия в локальных координатах (метры)
type Wing struct {
	Center v3.Vec
	Size   v3.Vec
}

// Wings returns the boxes an item is drawn with, in its local frame before
// rotation. A corner unit is the main wing (w x l) plus a corner wing
// (l x cornerLength) joined at one end, recentred on the compound box.
func Wings(it domain.PlacedItem) []Wing {
	w := it.CustomWidth / 100
	l := it.CustomLength / 100
	h := it.CustomHeight / 100
	if !it.IsCorner() {
		return []Wing{{Size: v3.Vec{X: w, Y: h, Z: l}}}
	}
	cl := it.CornerLength() / 100
	main := Wing{Center: v3.Vec{X: (w - l) / 2}, Size: v3.Vec{X: w, Y: h, Z: l}}
	corner := Wing{Center: v3.Vec{Z: -(cl - l) / 2}, Size: v3.Vec{X: l, Y: h, Z: cl}}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, wg := range []Wing{main, corner} {
		minX = math.Min(minX, wg.Center.X-wg.Size.X/2)
		maxX = math.Max(maxX, wg.Center.X+wg.Size.X/2)
		minZ = math.Min(minZ, wg.Center.Z-wg.Size.Z/2)
		maxZ = math.Max(maxZ, wg.Center.Z+wg.Size.Z/2)
	}
	c := v3.Vec{X: (minX + maxX) / 2, Z: (minZ + maxZ) / 2}
	main.Center = main.Center.Sub(c)
	corner.Center = corner.Center.Sub(c)
	return []Wing{main, corner}
}

// Rect прямоугольник на плоскости XZ
type Rect struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Footprint is the axis-aligned XZ box of the rotated item, relative to its
// position.
func Footprint(it domain.PlacedItem) Rect {
	r := Rect{MinX: math.Inf(1), MaxX: math.Inf(-1), MinZ: math.Inf(1), MaxZ: math.Inf(-1)}
	for _, wg := range Wings(it) {
		hx, hz := wg.Size.X/2, wg.Size.Z/2
		for _, sx := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				p := rotateY(v3.Vec{X: wg.Center.X + sx*hx, Z: wg.Center.Z + sz*hz}, it.Rotation)
				r.MinX = math.Min(r.MinX, p.X)
				r.MaxX = math.Max(r.MaxX, p.X)
				r.MinZ = math.Min(r.MinZ, p.Z)
				r.MaxZ = math.Max(r.MaxZ, p.Z)
			}
		}
	}
	return r
}

// rotateY turns p about the Y axis by deg degrees (counter-clockwise seen
// from above, right-handed).
func rotateY(p v3.Vec, deg float64) v3.Vec {
	s, c := math.Sincos(deg * math.Pi / 180)
	return v3.Vec{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// clampAxis shifts the centre c so that [c+lo, c+hi] lies inside
// [-half, half]. A box wider than the room is pushed off whichever wall it
// crosses; the max side is checked first when it crosses both.
func clampAxis(c, lo, hi, half float64) float64 {
	if c+hi > half {
		return half - hi
	}
	if c+lo < -half {
		return -half - lo
	}
	return c
}

const gridEps = 1e-9

// snapAxis rounds a clamped centre to the grid. A grid line that would push
// the box through a wall is replaced by the nearest line inside the allowed
// band; with no line in the band the clamped value stays.
func snapAxis(c, lo, hi, half float64) float64 {
	s := roundToGrid(c)
	bandLo, bandHi := -half-lo, half-hi
	if bandLo > bandHi+gridEps {
		return c
	}
	switch {
	case s > bandHi+gridEps:
		g := math.Floor((bandHi+gridEps)/GridStep) * GridStep
		if g >= bandLo-gridEps {
			return g
		}
		return c
	case s < bandLo-gridEps:
		g := math.Ceil((bandLo-gridEps)/GridStep) * GridStep
		if g <= bandHi+gridEps {
			return g
		}
		return c
	}
	return s
}

// roundToGrid rounds halves towards +Inf, like the browser renderer did.
func roundToGrid(v float64) float64 {
	return math.Floor(v/GridStep+0.5) * GridStep
}

// Constrain keeps an item of footprint fp centred at pos inside the room,
// optionally snapping x and z to the grid. Y is left as is.
func Constrain(pos domain.Vec3, fp Rect, room domain.RoomDimensions, snap bool) domain.Vec3 {
	hw, hl := room.Width/2, room.Length/2
	pos.X = clampAxis(pos.X, fp.MinX, fp.MaxX, hw)
	pos.Z = clampAxis(pos.Z, fp.MinZ, fp.MaxZ, hl)
	if snap {
		pos.X = snapAxis(pos.X, fp.MinX, fp.MaxX, hw)
		pos.Z = snapAxis(pos.Z, fp.MinZ, fp.MaxZ, hl)
	}
	return pos
}
