package camera

import "github.com/go-gl/mathgl/mgl32"

// Camera constants
const (
	// Free-look eye and look-at speed, units per second
	DefaultMoveSpeed = 2.5
	// Bird's-eye pan speed, units per second
	DefaultPanSpeed = 1.0

	// Field of view
	DefaultFOV = 45.0
	MinFOV     = 1.0
	MaxFOV     = 45.0

	// Clip planes
	Near = 0.1
	Far  = 100.0
)

// Default poses
var (
	DefaultEye    = mgl32.Vec3{5.0, 1.5, 7.0}
	DefaultLookAt = mgl32.Vec3{0.0, 0.0, 0.0}
	WorldUp       = mgl32.Vec3{0.0, 1.0, 0.0}

	DefaultBirdEyePosition = mgl32.Vec3{1.0, 2.5, 3.0}
	DefaultBirdEyeTarget   = mgl32.Vec3{1.0, 0.0, 0.0}
)

// Bird's-eye pan bounds on Z
const (
	BirdEyePositionMinZ = -1.0
	BirdEyePositionMaxZ = 3.0
	BirdEyeTargetMinZ   = -4.0
	BirdEyeTargetMaxZ   = 0.0
)
