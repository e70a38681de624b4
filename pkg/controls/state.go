package controls

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-livingroom/pkg/camera"
	"github.com/leterax/go-livingroom/pkg/scene"
)

// Knobs are the interactive model offsets. The room does not use them unless
// the renderer is told to apply them on top of every instance.
type Knobs struct {
	Translate mgl32.Vec3
	Rotate    mgl32.Vec3 // degrees about X, Y, Z
	Scale     mgl32.Vec3
}

// DefaultKnobs returns identity knobs
func DefaultKnobs() Knobs {
	return Knobs{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns T * Rx * Ry * Rz * S for the knob values
func (k Knobs) Matrix() mgl32.Mat4 {
	t := mgl32.Translate3D(k.Translate.X(), k.Translate.Y(), k.Translate.Z())
	rx := mgl32.HomogRotate3DX(mgl32.DegToRad(k.Rotate.X()))
	ry := mgl32.HomogRotate3DY(mgl32.DegToRad(k.Rotate.Y()))
	rz := mgl32.HomogRotate3DZ(mgl32.DegToRad(k.Rotate.Z()))
	s := mgl32.Scale3D(k.Scale.X(), k.Scale.Y(), k.Scale.Z())
	return t.Mul4(rx).Mul4(ry).Mul4(rz).Mul4(s)
}

// AppState is everything the frame loop reads and the input handler writes
type AppState struct {
	Camera *camera.Controller
	Fan    *scene.Fan
	Knobs  Knobs
	Quit   bool
}

// NewAppState wires a fresh camera and fan
func NewAppState(cam *camera.Controller, fan *scene.Fan) *AppState {
	return &AppState{
		Camera: cam,
		Fan:    fan,
		Knobs:  DefaultKnobs(),
	}
}
