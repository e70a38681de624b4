package controls_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/leterax/go-livingroom/pkg/camera"
	"github.com/leterax/go-livingroom/pkg/controls"
	"github.com/leterax/go-livingroom/pkg/scene"
)

const frame = float32(1.0 / 60.0)

func newState() *controls.AppState {
	return controls.NewAppState(
		camera.NewController(camera.DefaultOptions()),
		scene.NewFan(scene.DefaultFanStep, 0),
	)
}

func assertVecNear(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, msgAndArgs...)
	}
}

// run feeds the same keys for n frames
func run(h *controls.Handler, s *controls.AppState, keys controls.KeySet, n int) {
	for range n {
		h.Update(s, keys, frame)
	}
}

func TestHandlerQuit(t *testing.T) {
	s := newState()
	h := controls.NewHandler(false)
	run(h, s, nil, 1)
	assert.False(t, s.Quit)
	run(h, s, controls.KeySet{controls.KeyEscape: true}, 1)
	assert.True(t, s.Quit)
}

func TestHandlerFanToggle(t *testing.T) {
	t.Run("held key toggles once", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		run(h, s, controls.KeySet{controls.Key0: true}, 5)
		assert.True(t, s.Fan.On())
	})
	t.Run("release and press again toggles back", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		run(h, s, controls.KeySet{controls.Key0: true}, 2)
		run(h, s, nil, 1)
		run(h, s, controls.KeySet{controls.Key0: true}, 1)
		assert.False(t, s.Fan.On())
	})
	t.Run("legacy toggles flip on every held frame", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(true)
		run(h, s, controls.KeySet{controls.Key0: true}, 2)
		assert.False(t, s.Fan.On())
		run(h, s, controls.KeySet{controls.Key0: true}, 1)
		assert.True(t, s.Fan.On())
	})
}

func TestHandlerCameraToggle(t *testing.T) {
	t.Run("two separate presses return to free mode with pose unchanged", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		eye, lookAt := s.Camera.Eye(), s.Camera.LookAt()

		run(h, s, controls.KeySet{controls.KeyB: true}, 1)
		assert.Equal(t, camera.ModeBirdEye, s.Camera.Mode())
		run(h, s, nil, 1)
		run(h, s, controls.KeySet{controls.KeyB: true}, 1)

		assert.Equal(t, camera.ModeFree, s.Camera.Mode())
		assert.Equal(t, eye, s.Camera.Eye())
		assert.Equal(t, lookAt, s.Camera.LookAt())
	})
	t.Run("B also grows the Y scale knob while held", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		run(h, s, controls.KeySet{controls.KeyB: true}, 3)
		assert.Equal(t, camera.ModeBirdEye, s.Camera.Mode())
		assert.InDelta(t, 1.03, s.Knobs.Scale.Y(), 1e-5)
	})
}

func TestHandlerBirdEyePan(t *testing.T) {
	t.Run("W and S are ignored in free mode", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		pos, target := s.Camera.BirdEye()
		run(h, s, controls.KeySet{controls.KeyW: true}, 10)
		gotPos, gotTarget := s.Camera.BirdEye()
		assert.Equal(t, pos, gotPos)
		assert.Equal(t, target, gotTarget)
	})
	t.Run("W pans forward in bird's-eye mode", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		s.Camera.Toggle()
		run(h, s, controls.KeySet{controls.KeyW: true}, 60)
		pos, target := s.Camera.BirdEye()
		assert.InDelta(t, 2.0, pos.Z(), 1e-4)
		assert.InDelta(t, -1.0, target.Z(), 1e-4)
	})
	t.Run("S holds at the upper bounds", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		s.Camera.Toggle()
		run(h, s, controls.KeySet{controls.KeyS: true}, 60)
		pos, target := s.Camera.BirdEye()
		assert.Equal(t, float32(3), pos.Z())
		assert.Equal(t, float32(0), target.Z())
	})
	t.Run("pan uses the mode from before this frame's toggle", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		pos, _ := s.Camera.BirdEye()
		run(h, s, controls.KeySet{controls.KeyB: true, controls.KeyW: true}, 1)
		got, _ := s.Camera.BirdEye()
		assert.Equal(t, pos, got)
	})
}

func TestHandlerFreeLook(t *testing.T) {
	t.Run("holding H moves eye X by 2.5 per second", func(t *testing.T) {
		s := newState()
		h := controls.NewHandler(false)
		before := s.Camera.Eye()
		dt := float32(0.25)

		h.Update(s, controls.KeySet{controls.KeyH: true}, dt)

		assert.InDelta(t, before.X()+2.5*dt, s.Camera.Eye().X(), 1e-6)
		want := mgl32.LookAtV(s.Camera.Eye(), s.Camera.LookAt(), camera.WorldUp)
		assert.Equal(t, want, s.Camera.ViewMatrix())
	})
	cases := []struct {
		key    controls.Key
		eye    mgl32.Vec3
		lookAt mgl32.Vec3
	}{
		{controls.KeyH, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}},
		{controls.KeyF, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{}},
		{controls.KeyQ, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}},
		{controls.KeyE, mgl32.Vec3{0, -1, 0}, mgl32.Vec3{}},
		{controls.KeyT, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}},
		{controls.KeyG, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{}},
		{controls.Key1, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}},
		{controls.Key2, mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0}},
		{controls.Key3, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}},
		{controls.Key4, mgl32.Vec3{}, mgl32.Vec3{0, -1, 0}},
	}
	for _, tc := range cases {
		s := newState()
		h := controls.NewHandler(false)
		eye, lookAt := s.Camera.Eye(), s.Camera.LookAt()

		h.Update(s, controls.KeySet{tc.key: true}, 1)

		wantEye := eye.Add(tc.eye.Mul(camera.DefaultMoveSpeed))
		wantLookAt := lookAt.Add(tc.lookAt.Mul(camera.DefaultMoveSpeed))
		assertVecNear(t, wantEye, s.Camera.Eye(), "key %d eye", tc.key)
		assertVecNear(t, wantLookAt, s.Camera.LookAt(), "key %d look-at", tc.key)
	}
}

func TestHandlerKnobs(t *testing.T) {
	cases := []struct {
		key  controls.Key
		want controls.Knobs
	}{
		{controls.KeyI, controls.Knobs{Translate: mgl32.Vec3{0, 0.01, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyK, controls.Knobs{Translate: mgl32.Vec3{0, -0.01, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyL, controls.Knobs{Translate: mgl32.Vec3{0.01, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyJ, controls.Knobs{Translate: mgl32.Vec3{-0.01, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyO, controls.Knobs{Translate: mgl32.Vec3{0, 0, 0.01}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyP, controls.Knobs{Translate: mgl32.Vec3{0, 0, -0.01}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyC, controls.Knobs{Scale: mgl32.Vec3{1.01, 1, 1}}},
		{controls.KeyV, controls.Knobs{Scale: mgl32.Vec3{0.99, 1, 1}}},
		{controls.KeyN, controls.Knobs{Scale: mgl32.Vec3{1, 0.99, 1}}},
		{controls.KeyM, controls.Knobs{Scale: mgl32.Vec3{1, 1, 1.01}}},
		{controls.KeyU, controls.Knobs{Scale: mgl32.Vec3{1, 1, 0.99}}},
		{controls.KeyX, controls.Knobs{Rotate: mgl32.Vec3{1, 0, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyY, controls.Knobs{Rotate: mgl32.Vec3{0, 1, 0}, Scale: mgl32.Vec3{1, 1, 1}}},
		{controls.KeyZ, controls.Knobs{Rotate: mgl32.Vec3{0, 0, 1}, Scale: mgl32.Vec3{1, 1, 1}}},
	}
	for _, tc := range cases {
		s := newState()
		h := controls.NewHandler(false)
		// knob steps do not depend on frame time
		h.Update(s, controls.KeySet{tc.key: true}, 5)
		assertVecNear(t, tc.want.Translate, s.Knobs.Translate, "key %d translate", tc.key)
		assertVecNear(t, tc.want.Rotate, s.Knobs.Rotate, "key %d rotate", tc.key)
		assertVecNear(t, tc.want.Scale, s.Knobs.Scale, "key %d scale", tc.key)
	}
}

func TestKnobsMatrix(t *testing.T) {
	t.Run("defaults are identity", func(t *testing.T) {
		m := controls.DefaultKnobs().Matrix()
		for i, v := range mgl32.Ident4() {
			assert.InDelta(t, v, m[i], 1e-6)
		}
	})
	t.Run("translation lands in the last column", func(t *testing.T) {
		k := controls.DefaultKnobs()
		k.Translate = mgl32.Vec3{1, 2, 3}
		m := k.Matrix()
		assert.Equal(t, mgl32.Vec3{1, 2, 3}, m.Col(3).Vec3())
	})
}
