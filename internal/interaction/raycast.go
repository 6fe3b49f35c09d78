package interaction

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"roomcraft/internal/domain"
)

// Camera перспективная камера, смотрящая на Target
type Camera struct {
	Position v3.Vec
	Target   v3.Vec
	FOV      float64 // vertical, degrees
	Aspect   float64
}

// RoomCamera frames a room from above one corner, looking at its centre.
func RoomCamera(room domain.RoomDimensions, aspect float64) Camera {
	return Camera{
		Position: v3.Vec{X: room.Width, Y: room.Height * 2, Z: room.Length * 1.5},
		FOV:      50,
		Aspect:   aspect,
	}
}

// Ray returns the camera ray through a normalized pointer position.
func (c Camera) Ray(p Pointer) Ray {
	forward := c.Target.Sub(c.Position).Normalize()
	right := forward.Cross(v3.Vec{Y: 1}).Normalize()
	up := right.Cross(forward)
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	dir := forward.
		Add(right.MulScalar(p.X * tanHalf * aspect)).
		Add(up.MulScalar(p.Y * tanHalf))
	return Ray{Origin: c.Position, Direction: dir.Normalize()}
}

type sceneNode struct {
	parent      *sceneNode
	instanceID  string
	isFurniture bool
}

func (n *sceneNode) Parent() Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *sceneNode) FurnitureID() (string, bool) {
	return n.instanceID, n.isFurniture
}

type wingMesh struct {
	node     *sceneNode
	position v3.Vec
	rotation float64
	wing     Wing
}

// BoxScene is a headless scene of placed items drawn as boxes. Each item is
// a furniture root with one mesh child per wing, so picks resolve through
// the parent chain the same way a real renderer's do.
type BoxScene struct {
	camera Camera
	meshes []wingMesh
}

func NewBoxScene(camera Camera, items []domain.PlacedItem) *BoxScene {
	s := &BoxScene{camera: camera}
	for _, it := range items {
		root := &sceneNode{instanceID: it.InstanceID, isFurniture: true}
		for _, wg := range Wings(it) {
			s.meshes = append(s.meshes, wingMesh{
				node:     &sceneNode{parent: root},
				position: toVec(it.Position),
				rotation: it.Rotation,
				wing:     wg,
			})
		}
	}
	return s
}

func (s *BoxScene) Ray(p Pointer) Ray {
	return s.camera.Ray(p)
}

// Pick returns the nearest wing hit by the pointer ray.
func (s *BoxScene) Pick(p Pointer) (Hit, bool) {
	ray := s.camera.Ray(p)
	best := math.Inf(1)
	var hit Hit
	for _, m := range s.meshes {
		t, ok := m.intersect(ray)
		if !ok || t >= best {
			continue
		}
		best = t
		hit = Hit{Object: m.node, Point: fromVec(ray.Origin.Add(ray.Direction.MulScalar(t)))}
	}
	return hit, !math.IsInf(best, 1)
}

// intersect moves the ray into the wing's frame and runs a slab test.
func (m wingMesh) intersect(r Ray) (float64, bool) {
	o := rotateY(r.Origin.Sub(m.position), -m.rotation).Sub(m.wing.Center)
	d := rotateY(r.Direction, -m.rotation)
	half := m.wing.Size.MulScalar(0.5)

	tmin, tmax := 0.0, math.Inf(1)
	for _, axis := range [3][3]float64{{o.X, d.X, half.X}, {o.Y, d.Y, half.Y}, {o.Z, d.Z, half.Z}} {
		orig, dir, h := axis[0], axis[1], axis[2]
		if math.Abs(dir) < 1e-12 {
			if orig < -h || orig > h {
				return 0, false
			}
			continue
		}
		t1, t2 := (-h-orig)/dir, (h-orig)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
