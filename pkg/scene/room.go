package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Instance is one draw of the shared cube
type Instance struct {
	Name      string
	Placement Placement
	Color     mgl32.Vec4
}

// Model returns the instance's model matrix for the current fan angle
func (in Instance) Model(fanAngleDeg float32) mgl32.Mat4 {
	return Compose(in.Placement, fanAngleDeg)
}

// Palette
var (
	ColorTableTop   = mgl32.Vec4{0.882, 0.710, 0.604, 1.0}
	ColorTableLeg   = mgl32.Vec4{0.647, 0.408, 0.294, 1.0}
	ColorChairSeat  = mgl32.Vec4{0.455, 0.235, 0.102, 1.0}
	ColorChairFrame = mgl32.Vec4{0.329, 0.173, 0.110, 1.0}
	ColorFloor      = mgl32.Vec4{0.494, 0.514, 0.541, 1.0}
	ColorWall       = mgl32.Vec4{0.659, 0.820, 0.843, 1.0}
	ColorBlack      = mgl32.Vec4{0.0, 0.0, 0.0, 1.0}
	ColorWhite      = mgl32.Vec4{1.0, 1.0, 1.0, 1.0}
)

var (
	legScale    = mgl32.Vec3{0.2, -1.0, 0.2}
	seatScale   = mgl32.Vec3{1.0, 0.2, 1.0}
	postScale   = mgl32.Vec3{0.2, 1.3, 0.2}
	bladeHeight = float32(2.0)
)

// FanPivot is the world-space point every fan blade turns about
var FanPivot = mgl32.Vec3{1.0, 2.0, 0.05}

// Room returns the living room in draw order: table, chairs, fan, then the
// room shell and the whiteboard. The slice is freshly built on every call.
func Room() []Instance {
	var room []Instance
	room = append(room, table()...)
	room = append(room, chair("chair1", 0.25, 1.15, backAlongX)...)
	room = append(room, chair("chair2", 1.25, 1.15, backAlongX)...)
	room = append(room, chair("chair3", -0.75, 0.25, backAlongZ)...)
	room = append(room, fan()...)
	room = append(room, shell()...)
	return room
}

func fixed(name string, translation, scale mgl32.Vec3, color mgl32.Vec4) Instance {
	return Instance{
		Name:      name,
		Placement: Placement{Translation: translation, Scale: scale},
		Color:     color,
	}
}

func spinning(name string, translation, pivot, scale mgl32.Vec3, color mgl32.Vec4) Instance {
	return Instance{
		Name: name,
		Placement: Placement{
			Translation: translation,
			Scale:       scale,
			Pivot:       pivot,
			Spins:       true,
		},
		Color: color,
	}
}

func table() []Instance {
	return []Instance{
		fixed("table/top", mgl32.Vec3{0.0, -0.5, 0.0}, mgl32.Vec3{4.0, 0.2, 2.0}, ColorTableTop),
		fixed("table/leg-left-back", mgl32.Vec3{0.0, -0.5, 0.0}, legScale, ColorTableLeg),
		fixed("table/leg-right-back", mgl32.Vec3{1.9, -0.5, 0.0}, legScale, ColorTableLeg),
		fixed("table/leg-left-front", mgl32.Vec3{0.0, -0.5, 0.9}, legScale, ColorTableLeg),
		fixed("table/leg-right-front", mgl32.Vec3{1.9, -0.5, 0.9}, legScale, ColorTableLeg),
	}
}

type backrest int

const (
	// backAlongX puts the backrest on the chair's +Z edge, spanning X
	backAlongX backrest = iota
	// backAlongZ puts the backrest on the chair's -X edge, spanning Z
	backAlongZ
)

// chair builds a seat with four legs and a two-rail backrest. (x, z) is the
// seat's minimum corner.
func chair(name string, x, z float32, back backrest) []Instance {
	const (
		span = 0.4 // leg-to-leg distance
		seat = -0.5
		post = -0.4
		top  = 0.15
		mid  = -0.20
	)
	part := func(p string) string { return fmt.Sprintf("%s/%s", name, p) }

	out := []Instance{
		fixed(part("seat"), mgl32.Vec3{x, seat, z}, seatScale, ColorChairSeat),
		fixed(part("leg-1"), mgl32.Vec3{x, seat, z}, legScale, ColorChairFrame),
	}

	switch back {
	case backAlongX:
		rail := mgl32.Vec3{1.0, 0.2, 0.2}
		out = append(out,
			fixed(part("leg-2"), mgl32.Vec3{x, seat, z + span}, legScale, ColorChairFrame),
			fixed(part("leg-3"), mgl32.Vec3{x + span, seat, z + span}, legScale, ColorChairFrame),
			fixed(part("leg-4"), mgl32.Vec3{x + span, seat, z}, legScale, ColorChairFrame),
			fixed(part("post-left"), mgl32.Vec3{x, post, z + span}, postScale, ColorChairFrame),
			fixed(part("post-right"), mgl32.Vec3{x + span, post, z + span}, postScale, ColorChairFrame),
			fixed(part("rail-top"), mgl32.Vec3{x, top, z + span}, rail, ColorChairFrame),
			fixed(part("rail-mid"), mgl32.Vec3{x, mid, z + span}, rail, ColorChairFrame),
		)
	case backAlongZ:
		rail := mgl32.Vec3{0.2, 0.2, 1.0}
		out = append(out,
			fixed(part("leg-2"), mgl32.Vec3{x, seat, z + span}, legScale, ColorChairFrame),
			fixed(part("leg-3"), mgl32.Vec3{x + span, seat, z}, legScale, ColorChairFrame),
			fixed(part("leg-4"), mgl32.Vec3{x + span, seat, z + span}, legScale, ColorChairFrame),
			fixed(part("post-left"), mgl32.Vec3{x, post, z}, postScale, ColorChairFrame),
			fixed(part("post-right"), mgl32.Vec3{x, post, z + span}, postScale, ColorChairFrame),
			fixed(part("rail-top"), mgl32.Vec3{x, top, z}, rail, ColorChairFrame),
			fixed(part("rail-mid"), mgl32.Vec3{x, mid, z}, rail, ColorChairFrame),
		)
	}
	return out
}

// fan hangs from the roof; the hub and blades all spin about FanPivot
func fan() []Instance {
	y := bladeHeight
	return []Instance{
		fixed("fan/rod", mgl32.Vec3{0.95, 2.5, 0.0}, mgl32.Vec3{0.2, -1.0, 0.2}, ColorBlack),
		spinning("fan/hub", mgl32.Vec3{0.8, y, -0.15}, mgl32.Vec3{0.2, 0, 0.2}, mgl32.Vec3{0.8, -0.2, 0.8}, ColorBlack),
		spinning("fan/blade-left", mgl32.Vec3{0.8, y, -0.05}, mgl32.Vec3{0.2, 0, 0.1}, mgl32.Vec3{-1.5, -0.2, 0.4}, ColorWhite),
		spinning("fan/blade-right", mgl32.Vec3{1.2, y, -0.05}, mgl32.Vec3{-0.2, 0, 0.1}, mgl32.Vec3{1.5, -0.2, 0.4}, ColorWhite),
		spinning("fan/blade-up", mgl32.Vec3{0.9, y, -0.15}, mgl32.Vec3{0.1, 0, 0.2}, mgl32.Vec3{0.4, -0.2, -1.5}, ColorWhite),
		spinning("fan/blade-down", mgl32.Vec3{0.9, y, 0.25}, mgl32.Vec3{0.1, 0, -0.2}, mgl32.Vec3{0.4, -0.2, 1.5}, ColorWhite),
	}
}

func shell() []Instance {
	return []Instance{
		fixed("floor", mgl32.Vec3{-1.5, -1.0, -4.1}, mgl32.Vec3{10.0, -0.2, 14.2}, ColorFloor),
		fixed("wall-front", mgl32.Vec3{-1.5, -1.0, -4.0}, mgl32.Vec3{10.0, 7.0, -0.2}, ColorWall),
		fixed("wall-left", mgl32.Vec3{-1.5, -1.0, -4.0}, mgl32.Vec3{0.2, 7.0, 14.0}, ColorWall),
		fixed("roof", mgl32.Vec3{-1.5, 2.5, -4.1}, mgl32.Vec3{10.0, 0.2, 14.2}, ColorFloor),
		fixed("whiteboard", mgl32.Vec3{0.0, 0.0, -4.0}, mgl32.Vec3{5.0, 3.0, 0.2}, ColorBlack),
	}
}
