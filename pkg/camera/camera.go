// Package camera implements the two mutually exclusive room cameras: a
// free eye/look-at pair and a fixed overhead view that pans along Z.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects which pose drives the view matrix
type Mode int

const (
	ModeFree Mode = iota
	ModeBirdEye
)

func (m Mode) String() string {
	switch m {
	case ModeFree:
		return "free"
	case ModeBirdEye:
		return "bird-eye"
	}
	return "unknown"
}

// Bounds is a closed interval
type Bounds struct {
	Min, Max float32
}

// Clamp limits v to the interval
func (b Bounds) Clamp(v float32) float32 {
	return mgl32.Clamp(v, b.Min, b.Max)
}

// Options configures a Controller. Zero speeds fall back to the defaults.
type Options struct {
	Eye, LookAt                      mgl32.Vec3
	BirdEyePosition, BirdEyeTarget   mgl32.Vec3
	MoveSpeed, PanSpeed              float32
	BirdEyePositionZ, BirdEyeTargetZ Bounds
}

// DefaultOptions returns the room's stock camera setup
func DefaultOptions() Options {
	return Options{
		Eye:              DefaultEye,
		LookAt:           DefaultLookAt,
		BirdEyePosition:  DefaultBirdEyePosition,
		BirdEyeTarget:    DefaultBirdEyeTarget,
		MoveSpeed:        DefaultMoveSpeed,
		PanSpeed:         DefaultPanSpeed,
		BirdEyePositionZ: Bounds{BirdEyePositionMinZ, BirdEyePositionMaxZ},
		BirdEyeTargetZ:   Bounds{BirdEyeTargetMinZ, BirdEyeTargetMaxZ},
	}
}

// Controller holds both poses; only the active one feeds the view matrix and
// the other is kept untouched until toggled back.
type Controller struct {
	mode Mode

	// Free pose
	eye    mgl32.Vec3
	lookAt mgl32.Vec3
	up     mgl32.Vec3
	fov    float32

	// Bird's-eye pose
	birdPos    mgl32.Vec3
	birdTarget mgl32.Vec3

	moveSpeed float32
	panSpeed  float32
	posZ      Bounds
	targetZ   Bounds
}

// NewController creates a controller in free mode
func NewController(opts Options) *Controller {
	if opts.MoveSpeed == 0 {
		opts.MoveSpeed = DefaultMoveSpeed
	}
	if opts.PanSpeed == 0 {
		opts.PanSpeed = DefaultPanSpeed
	}
	c := &Controller{
		mode:       ModeFree,
		eye:        opts.Eye,
		lookAt:     opts.LookAt,
		up:         WorldUp,
		fov:        DefaultFOV,
		birdPos:    opts.BirdEyePosition,
		birdTarget: opts.BirdEyeTarget,
		moveSpeed:  opts.MoveSpeed,
		panSpeed:   opts.PanSpeed,
		posZ:       opts.BirdEyePositionZ,
		targetZ:    opts.BirdEyeTargetZ,
	}
	c.clampBirdEye()
	return c
}

// Mode returns the active mode
func (c *Controller) Mode() Mode {
	return c.mode
}

// Toggle switches between free and bird's-eye mode
func (c *Controller) Toggle() Mode {
	if c.mode == ModeFree {
		c.mode = ModeBirdEye
	} else {
		c.mode = ModeFree
	}
	return c.mode
}

// Eye returns the free-mode eye position
func (c *Controller) Eye() mgl32.Vec3 {
	return c.eye
}

// LookAt returns the free-mode look-at point
func (c *Controller) LookAt() mgl32.Vec3 {
	return c.lookAt
}

// BirdEye returns the bird's-eye position and target
func (c *Controller) BirdEye() (position, target mgl32.Vec3) {
	return c.birdPos, c.birdTarget
}

// FOV returns the vertical field of view in degrees
func (c *Controller) FOV() float32 {
	return c.fov
}

// MoveEye shifts the free-mode eye by dir * speed * dt
func (c *Controller) MoveEye(dir mgl32.Vec3, dt float32) {
	c.eye = c.eye.Add(dir.Mul(c.moveSpeed * dt))
}

// MoveLookAt shifts the free-mode look-at point by dir * speed * dt
func (c *Controller) MoveLookAt(dir mgl32.Vec3, dt float32) {
	c.lookAt = c.lookAt.Add(dir.Mul(c.moveSpeed * dt))
}

// PanBirdEye moves the overhead camera along Z by dz * pan speed * dt.
// Position and target move together and are clamped independently after
// the move, so a long frame can overshoot and snap back to the bound.
func (c *Controller) PanBirdEye(dz float32, dt float32) {
	step := dz * c.panSpeed * dt
	c.birdPos[2] += step
	c.birdTarget[2] += step
	c.clampBirdEye()
}

func (c *Controller) clampBirdEye() {
	c.birdPos[2] = c.posZ.Clamp(c.birdPos[2])
	c.birdTarget[2] = c.targetZ.Clamp(c.birdTarget[2])
}

// Zoom narrows or widens the free-mode field of view, as a scroll wheel does
func (c *Controller) Zoom(yoffset float32) {
	c.fov = mgl32.Clamp(c.fov-yoffset, MinFOV, MaxFOV)
}

// ViewMatrix returns the view matrix of the active pose
func (c *Controller) ViewMatrix() mgl32.Mat4 {
	if c.mode == ModeBirdEye {
		return mgl32.LookAtV(c.birdPos, c.birdTarget, WorldUp)
	}
	return mgl32.LookAtV(c.eye, c.lookAt, c.up)
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio
func (c *Controller) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.fov), aspect, Near, Far)
}
