package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-livingroom/pkg/scene"
)

const eps = 1e-4

// assertVecNear compares component-wise with an absolute tolerance, so values
// expected to be zero tolerate float rounding too
func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d: want %v, got %v", i, want, got)
	}
}

func assertMatNear(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "element %d: want %v, got %v", i, want, got)
	}
}

func TestCompose(t *testing.T) {
	t.Run("fixed placement is translate times scale", func(t *testing.T) {
		p := scene.Placement{
			Translation: mgl32.Vec3{1, 2, 3},
			Scale:       mgl32.Vec3{2, 4, 6},
		}
		got := scene.Compose(p, 90)
		want := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 4, 6))
		assertMatNear(t, want, got)
	})
	t.Run("fixed placement ignores the angle", func(t *testing.T) {
		p := scene.Placement{Translation: mgl32.Vec3{1, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}}
		assert.Equal(t, scene.Compose(p, 0), scene.Compose(p, 123))
	})
	t.Run("spinning placement at zero degrees equals fixed placement", func(t *testing.T) {
		p := scene.Placement{
			Translation: mgl32.Vec3{0.8, 2, -0.15},
			Scale:       mgl32.Vec3{0.8, -0.2, 0.8},
			Pivot:       mgl32.Vec3{0.2, 0, 0.2},
			Spins:       true,
		}
		fixed := p
		fixed.Spins = false
		assertMatNear(t, scene.Compose(fixed, 0), scene.Compose(p, 0))
	})
	t.Run("rotation turns clockwise seen from above", func(t *testing.T) {
		// +X rotated 90 degrees clockwise about +Y ends on +Z
		got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, scene.RotateY(90))
		assertVecNear(t, mgl32.Vec3{0, 0, 1}, got)
	})
	t.Run("zero components tolerate rounding", func(t *testing.T) {
		// cos(90deg) in float32 is not exactly zero
		got := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 1}, scene.RotateY(90))
		assertVecNear(t, mgl32.Vec3{-1, 0, 0}, got)
	})
}

func TestPivotStaysFixed(t *testing.T) {
	for _, in := range scene.Room() {
		if !in.Placement.Spins {
			continue
		}
		p := in.Placement
		// local point that the scale maps onto the pivot
		local := mgl32.Vec3{
			p.Pivot.X() / p.Scale.X(),
			p.Pivot.Y() / p.Scale.Y(),
			p.Pivot.Z() / p.Scale.Z(),
		}
		t.Run(in.Name, func(t *testing.T) {
			for angle := float32(0); angle <= 360; angle += 7.5 {
				got := mgl32.TransformCoordinate(local, scene.Compose(p, angle))
				assertVecNear(t, p.WorldPivot(), got)
			}
		})
	}
}

func TestHubCenterStaysFixed(t *testing.T) {
	var hub scene.Instance
	for _, in := range scene.Room() {
		if in.Name == "fan/hub" {
			hub = in
		}
	}
	if !assert.True(t, hub.Placement.Spins) {
		return
	}
	rest := hub.Placement.Center(0)
	for angle := float32(0); angle <= 360; angle += 15 {
		assertVecNear(t, rest, hub.Placement.Center(angle))
	}
}

func TestBladesMoveWhileSpinning(t *testing.T) {
	for _, in := range scene.Room() {
		if !in.Placement.Spins || in.Name == "fan/hub" {
			continue
		}
		a := in.Placement.Center(0)
		b := in.Placement.Center(90)
		assert.Greater(t, a.Sub(b).Len(), float32(eps), in.Name)
	}
}
