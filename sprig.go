package sprig

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is an opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA8 builds a Color from 8-bit channel values.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// Bytes returns the color as 8-bit channel values, clamping out of range
// components.
func (c Color) Bytes() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Rect is an axis-aligned rectangle in integer screen coordinates. The origin
// is the top-left corner with Y increasing downward.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the point (x, y) lies inside the half-open
// rectangle [X, X+Width) × [Y, Y+Height).
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Inset shrinks the rectangle by d on every side. A negative d grows it.
func (r Rect) Inset(d int) Rect {
	return Rect{
		X:      r.X + d,
		Y:      r.Y + d,
		Width:  r.Width - 2*d,
		Height: r.Height - 2*d,
	}
}

// Highlight levels stored in an element's elastic counter.
const (
	DeepHighlight  = 200 // set on touch down; wash and outline
	ThickHighlight = 150 // emphasized border, no wash
	Highlight      = 100 // reserved
	NoHighlight    = 0   // nothing drawn
)

// HighlightInset is how far the press highlight extends beyond an
// element's bounds on each side.
const HighlightInset = 5

var (
	highlightWash    = RGBA8(0xad, 0xd8, 0xe6, 0x90)
	highlightOutline = RGBA8(0x66, 0x7c, 0x89, 0xff)
)

// EventType identifies a kind of interaction event forwarded to an
// EntityStore.
type EventType uint8

const (
	EventPress  EventType = iota // touch down landed on the element
	EventCancel                  // pointer drifted past the drag threshold
	EventTap                     // touch up committed the tap
)

func (t EventType) String() string {
	switch t {
	case EventPress:
		return "press"
	case EventCancel:
		return "cancel"
	case EventTap:
		return "tap"
	default:
		return "unknown"
	}
}

// InteractionEvent carries tap data for the optional ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	X, Y     int
}

// EntityStore receives interaction events for elements that carry a
// nonzero EntityID.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}
