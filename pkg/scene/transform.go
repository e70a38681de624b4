// Package scene describes the living room as a fixed list of cube instances
// and composes their model matrices.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Placement maps the shared cube into world space.
type Placement struct {
	Translation mgl32.Vec3
	Scale       mgl32.Vec3

	// Pivot is the rotation center relative to Translation, expressed after
	// scaling. Only used when Spins is set.
	Pivot mgl32.Vec3
	Spins bool
}

// RotateY returns a rotation of angleDeg degrees about +Y that turns
// clockwise when seen from above, i.e. the inverse of mgl32.HomogRotate3DY.
func RotateY(angleDeg float32) mgl32.Mat4 {
	return mgl32.HomogRotate3DY(-mgl32.DegToRad(angleDeg))
}

// Compose builds the model matrix for p. Spinning placements are rotated
// about their pivot:
//
//	T(translation) * T(+pivot) * Ry(angle) * T(-pivot) * S(scale)
//
// everything else is T(translation) * S(scale) and ignores angleDeg.
func Compose(p Placement, angleDeg float32) mgl32.Mat4 {
	translate := mgl32.Translate3D(p.Translation.X(), p.Translation.Y(), p.Translation.Z())
	scale := mgl32.Scale3D(p.Scale.X(), p.Scale.Y(), p.Scale.Z())
	if !p.Spins {
		return translate.Mul4(scale)
	}

	toPivot := mgl32.Translate3D(p.Pivot.X(), p.Pivot.Y(), p.Pivot.Z())
	fromPivot := mgl32.Translate3D(-p.Pivot.X(), -p.Pivot.Y(), -p.Pivot.Z())

	return translate.Mul4(toPivot).Mul4(RotateY(angleDeg)).Mul4(fromPivot).Mul4(scale)
}

// WorldPivot returns the world-space point a spinning placement turns about
func (p Placement) WorldPivot() mgl32.Vec3 {
	return p.Translation.Add(p.Pivot)
}

// Center returns the world-space center of the placed cube at the given angle
func (p Placement) Center(angleDeg float32) mgl32.Vec3 {
	const h = CubeEdge / 2
	return mgl32.TransformCoordinate(mgl32.Vec3{h, h, h}, Compose(p, angleDeg))
}
