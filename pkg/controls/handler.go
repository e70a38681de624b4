// Package controls turns polled keyboard state into changes to the room's
// camera, fan and transform knobs.
package controls

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-livingroom/pkg/camera"
)

// Fixed per-frame increments
const (
	KnobTranslateStep = 0.01
	KnobScaleStep     = 0.01
	KnobRotateStep    = 1.0 // degrees
)

type heldAction func(s *AppState, dt float32)

type binding struct {
	key    Key
	action heldAction
}

func knobTranslate(axis int, step float32) heldAction {
	return func(s *AppState, _ float32) { s.Knobs.Translate[axis] += step }
}

func knobScale(axis int, step float32) heldAction {
	return func(s *AppState, _ float32) { s.Knobs.Scale[axis] += step }
}

func knobRotate(axis int) heldAction {
	return func(s *AppState, _ float32) { s.Knobs.Rotate[axis] += KnobRotateStep }
}

func moveEye(dir mgl32.Vec3) heldAction {
	return func(s *AppState, dt float32) { s.Camera.MoveEye(dir, dt) }
}

func moveLookAt(dir mgl32.Vec3) heldAction {
	return func(s *AppState, dt float32) { s.Camera.MoveLookAt(dir, dt) }
}

var (
	posX = mgl32.Vec3{1, 0, 0}
	negX = mgl32.Vec3{-1, 0, 0}
	posY = mgl32.Vec3{0, 1, 0}
	negY = mgl32.Vec3{0, -1, 0}
	posZ = mgl32.Vec3{0, 0, 1}
	negZ = mgl32.Vec3{0, 0, -1}
)

// heldBindings re-apply every frame the key is down. B is deliberately bound
// here as well as to the bird's-eye toggle.
var heldBindings = []binding{
	{KeyI, knobTranslate(1, KnobTranslateStep)},
	{KeyK, knobTranslate(1, -KnobTranslateStep)},
	{KeyL, knobTranslate(0, KnobTranslateStep)},
	{KeyJ, knobTranslate(0, -KnobTranslateStep)},
	{KeyO, knobTranslate(2, KnobTranslateStep)},
	{KeyP, knobTranslate(2, -KnobTranslateStep)},
	{KeyC, knobScale(0, KnobScaleStep)},
	{KeyV, knobScale(0, -KnobScaleStep)},
	{KeyB, knobScale(1, KnobScaleStep)},
	{KeyN, knobScale(1, -KnobScaleStep)},
	{KeyM, knobScale(2, KnobScaleStep)},
	{KeyU, knobScale(2, -KnobScaleStep)},
	{KeyX, knobRotate(0)},
	{KeyY, knobRotate(1)},
	{KeyZ, knobRotate(2)},
	{KeyH, moveEye(posX)},
	{KeyF, moveEye(negX)},
	{KeyT, moveEye(posZ)},
	{KeyG, moveEye(negZ)},
	{KeyQ, moveEye(posY)},
	{KeyE, moveEye(negY)},
	{Key1, moveLookAt(posX)},
	{Key2, moveLookAt(negX)},
	{Key3, moveLookAt(posY)},
	{Key4, moveLookAt(negY)},
}

// Handler applies key bindings once per frame.
//
// Toggle keys fire on the frame they go down. With legacy toggles they fire
// on every frame they are held, so a press spanning two frames toggles twice.
type Handler struct {
	legacyToggles bool
	prev          map[Key]bool
}

// NewHandler creates an input handler
func NewHandler(legacyToggles bool) *Handler {
	return &Handler{
		legacyToggles: legacyToggles,
		prev:          make(map[Key]bool),
	}
}

// triggered reports whether a toggle key fires this frame and records its state
func (h *Handler) triggered(keys KeyState, key Key) bool {
	down := keys.Pressed(key)
	wasDown := h.prev[key]
	h.prev[key] = down
	if h.legacyToggles {
		return down
	}
	return down && !wasDown
}

// Update polls keys and mutates s. dt is the previous frame's duration in
// seconds and scales camera movement only.
func (h *Handler) Update(s *AppState, keys KeyState, dt float32) {
	if keys.Pressed(KeyEscape) {
		s.Quit = true
	}

	if h.triggered(keys, Key0) {
		s.Fan.Toggle()
		slog.Debug("fan toggled", "on", s.Fan.On())
	}

	// Panning reads the mode before this frame's toggle is applied
	if s.Camera.Mode() == camera.ModeBirdEye {
		if keys.Pressed(KeyW) {
			s.Camera.PanBirdEye(-1, dt)
		}
		if keys.Pressed(KeyS) {
			s.Camera.PanBirdEye(1, dt)
		}
	}

	if h.triggered(keys, KeyB) {
		mode := s.Camera.Toggle()
		slog.Debug("camera mode toggled", "mode", mode)
	}

	for _, b := range heldBindings {
		if keys.Pressed(b.key) {
			b.action(s, dt)
		}
	}
}
