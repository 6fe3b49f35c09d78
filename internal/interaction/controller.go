// Package interaction turns pointer input over the rendered room into
// selection, hover feedback and wall-constrained drags of placed furniture.
package interaction

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"roomcraft/internal/domain"
)

// Pointer позиция указателя в нормализованных координатах [-1, 1], Y вверх
type Pointer struct {
	X, Y float64
}

// Viewport прямоугольник области отрисовки в пикселях
type Viewport struct {
	Left, Top, Width, Height float64
}

// NormalizePointer converts client pixel coordinates to a Pointer.
func NormalizePointer(clientX, clientY float64, vp Viewport) Pointer {
	return Pointer{
		X: (clientX-vp.Left)/vp.Width*2 - 1,
		Y: -(clientY-vp.Top)/vp.Height*2 + 1,
	}
}

// Node объект сцены
type Node interface {
	// Parent returns nil at the scene root.
	Parent() Node
	// FurnitureID reports the instance id when the node is a furniture root.
	FurnitureID() (string, bool)
}

// Hit ближайшее пересечение луча со сценой
type Hit struct {
	Object Node
	Point  domain.Vec3
}

// Scene is the renderer side: picking and camera rays.
type Scene interface {
	Pick(p Pointer) (Hit, bool)
	Ray(p Pointer) Ray
}

// OrbitControls камера, которую замораживают на время перетаскивания
type OrbitControls interface {
	SetEnabled(enabled bool)
}

// Placement is the part of the room the controller reads and commits to.
type Placement interface {
	Item(id string) (domain.PlacedItem, bool)
	Dimensions() domain.RoomDimensions
	Select(id string) error
	ClearSelection()
	UpdateItemPosition(id string, pos domain.Vec3) error
}

// State состояние контроллера
type State int

const (
	StateIdle State = iota
	StateHovering
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StateDragging:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Cursor курсор над областью отрисовки
type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorPointer  Cursor = "pointer"
	CursorGrabbing Cursor = "grabbing"
)

// Controller конечный автомат Idle / Hovering / Dragging
type Controller struct {
	scene    Scene
	controls OrbitControls
	room     Placement
	log      *zap.Logger

	snap    bool
	state   State
	hovered string
	cursor  Cursor

	dragID    string
	dragPlane float64
	dragItem  domain.PlacedItem
	dragPos   domain.Vec3
}

func NewController(scene Scene, controls OrbitControls, room Placement, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		scene:    scene,
		controls: controls,
		room:     room,
		log:      log.Named("interaction"),
		snap:     true,
		state:    StateIdle,
		cursor:   CursorGrab,
	}
}

// SetScene swaps the scene after the renderer rebuilt it.
func (c *Controller) SetScene(s Scene) { c.scene = s }

func (c *Controller) SetSnapToGrid(on bool) { c.snap = on }

func (c *Controller) SnapToGrid() bool { return c.snap }

func (c *Controller) State() State { return c.state }

func (c *Controller) Cursor() Cursor { return c.cursor }

// Hovered returns the highlighted instance id.
func (c *Controller) Hovered() (string, bool) {
	return c.hovered, c.hovered != ""
}

// DragPosition returns the live position of the dragged item. It is not
// committed to the room until pointer-up.
func (c *Controller) DragPosition() (string, domain.Vec3, bool) {
	if c.state != StateDragging {
		return "", domain.Vec3{}, false
	}
	return c.dragID, c.dragPos, true
}

// furnitureAt resolves the nearest furniture root under the pointer.
func (c *Controller) furnitureAt(p Pointer) (string, domain.Vec3, bool) {
	hit, ok := c.scene.Pick(p)
	if !ok {
		return "", domain.Vec3{}, false
	}
	for n := hit.Object; n != nil; n = n.Parent() {
		if id, ok := n.FurnitureID(); ok {
			return id, hit.Point, true
		}
	}
	return "", domain.Vec3{}, false
}

// PointerDown starts a drag over furniture or clears the selection over
// empty space. It is ignored while a drag is in progress.
func (c *Controller) PointerDown(p Pointer) {
	if c.state == StateDragging {
		return
	}
	id, point, ok := c.furnitureAt(p)
	if !ok {
		c.room.ClearSelection()
		c.hovered = ""
		c.state = StateIdle
		c.cursor = CursorGrab
		return
	}
	it, ok := c.room.Item(id)
	if !ok {
		c.log.Warn("picked furniture is not in the room", zap.String("instance_id", id))
		return
	}
	if err := c.room.Select(id); err != nil {
		c.log.Warn("select failed", zap.String("instance_id", id), zap.Error(err))
		return
	}
	c.controls.SetEnabled(false)
	c.dragID = id
	c.dragItem = it
	c.dragPlane = point.Y
	c.dragPos = Constrain(it.Position, Footprint(it), c.room.Dimensions(), c.snap)
	c.state = StateDragging
	c.cursor = CursorGrabbing
}

// PointerMove moves the dragged item or updates the hover target.
func (c *Controller) PointerMove(p Pointer) {
	if c.state == StateDragging {
		c.drag(p)
		return
	}
	id, _, ok := c.furnitureAt(p)
	if ok {
		c.hovered = id
		c.state = StateHovering
		c.cursor = CursorPointer
		return
	}
	c.hovered = ""
	c.state = StateIdle
	c.cursor = CursorGrab
}

func (c *Controller) drag(p Pointer) {
	hit, ok := c.scene.Ray(p).IntersectHorizontalPlane(c.dragPlane)
	if !ok {
		return
	}
	candidate := domain.Vec3{X: hit.X, Y: c.dragItem.Position.Y, Z: hit.Z}
	c.dragPos = Constrain(candidate, Footprint(c.dragItem), c.room.Dimensions(), c.snap)
}

// PointerUp commits the drag and re-enables the orbit controls. Outside a
// drag it only refreshes hover state.
func (c *Controller) PointerUp(p Pointer) error {
	if c.state != StateDragging {
		c.PointerMove(p)
		return nil
	}
	id, pos := c.dragID, c.dragPos
	c.dragID = ""
	c.dragItem = domain.PlacedItem{}
	c.controls.SetEnabled(true)
	c.state = StateIdle
	c.PointerMove(p)

	if err := c.room.UpdateItemPosition(id, pos); err != nil {
		c.log.Warn("drag commit failed", zap.String("instance_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Ray луч из камеры
type Ray struct {
	Origin    v3.Vec
	Direction v3.Vec
}

// IntersectHorizontalPlane returns where the ray meets the plane y = h. A
// ray parallel to the plane or pointing away from it has no intersection.
func (r Ray) IntersectHorizontalPlane(h float64) (v3.Vec, bool) {
	if r.Direction.Y > -1e-12 && r.Direction.Y < 1e-12 {
		return v3.Vec{}, false
	}
	t := (h - r.Origin.Y) / r.Direction.Y
	if t < 0 {
		return v3.Vec{}, false
	}
	return r.Origin.Add(r.Direction.MulScalar(t)), true
}

func toVec(p domain.Vec3) v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

func fromVec(v v3.Vec) domain.Vec3 { return domain.Vec3{X: v.X, Y: v.Y, Z: v.Z} }
