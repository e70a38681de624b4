package controls

// Key identifies a keyboard key independently of the windowing library
type Key int

// Keys used by the room controls
const (
	KeyUnknown Key = iota
	KeyEscape
	Key0
	Key1
	Key2
	Key3
	Key4
	KeyB
	KeyC
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// AllKeys lists every key the handler polls
var AllKeys = []Key{
	KeyEscape, Key0, Key1, Key2, Key3, Key4,
	KeyB, KeyC, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
	KeyN, KeyO, KeyP, KeyQ, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
}

// KeyState reports whether a key is currently held down
type KeyState interface {
	Pressed(key Key) bool
}

// KeySet is a KeyState backed by a set, handy for scripted input
type KeySet map[Key]bool

// Pressed implements KeyState
func (k KeySet) Pressed(key Key) bool {
	return k[key]
}
