package sprig

// InputEvents is the view of one input event that the touch state machine
// consumes.
type InputEvents interface {
	IsTouchDown() bool
	IsTouchDrag() bool
	IsTouchUp() bool
	// Pos returns the pointer position in absolute screen coordinates.
	Pos() (x, y int)
	// TouchIn reports whether the pointer lies inside the half-open
	// rectangle [x, x+w) × [y, y+h).
	TouchIn(x, y, w, h int) bool
}

// EventKind identifies the gesture phase of an Event.
type EventKind uint8

const (
	TouchNone EventKind = iota // no touch activity (hover, keyboard, idle frame)
	TouchDown                  // pointer pressed this frame
	TouchDrag                  // pointer held and moved
	TouchUp                    // pointer released this frame
)

func (k EventKind) String() string {
	switch k {
	case TouchDown:
		return "down"
	case TouchDrag:
		return "drag"
	case TouchUp:
		return "up"
	default:
		return "none"
	}
}

// Event is a single sampled pointer event. It is the InputEvents value
// produced by backends and by injected input.
type Event struct {
	Kind EventKind
	X, Y int
}

func (ev Event) IsTouchDown() bool { return ev.Kind == TouchDown }
func (ev Event) IsTouchDrag() bool { return ev.Kind == TouchDrag }
func (ev Event) IsTouchUp() bool   { return ev.Kind == TouchUp }
func (ev Event) Pos() (int, int)   { return ev.X, ev.Y }

// TouchIn implements InputEvents.
func (ev Event) TouchIn(x, y, w, h int) bool {
	return Rect{X: x, Y: y, Width: w, Height: h}.Contains(ev.X, ev.Y)
}

// --- Touch state machine ---

// OnTouchDown starts a press when ev is a touch down inside the element's
// bounds. It reports whether it matched.
func (e *Element) OnTouchDown(ev InputEvents) bool {
	if !ev.IsTouchDown() {
		return false
	}
	if !ev.TouchIn(e.xAbs, e.yAbs, e.Width, e.Height) {
		return false
	}

	e.dragging = true
	e.lastMouseX, e.lastMouseY = ev.Pos()

	if e.Touchable {
		e.elasticCounter = DeepHighlight
	}
	e.emit(EventPress, e.lastMouseX, e.lastMouseY)
	return true
}

// OnTouchDrag cancels a pending tap once the pointer drifts at least the
// profile's drag threshold from the press point on either axis. It reports a
// redraw only when a visible highlight was cleared. Dragging stays set until
// the touch up.
func (e *Element) OnTouchDrag(ev InputEvents) bool {
	if !ev.IsTouchDrag() {
		return false
	}
	if !e.dragging {
		return false
	}

	threshold := e.profile().DragThreshold()
	x, y := ev.Pos()
	if abs(x-e.lastMouseX) < threshold && abs(y-e.lastMouseY) < threshold {
		return false
	}

	ret := e.elasticCounter > NoHighlight
	e.elasticCounter = NoHighlight
	if ret {
		e.emit(EventCancel, x, y)
	}
	return ret
}

// OnTouchUp ends a press. The bound action runs when the press is still
// live (highlight not cancelled) and the release lands inside the bounds.
// The element always returns to idle.
func (e *Element) OnTouchUp(ev InputEvents) bool {
	if !ev.IsTouchUp() {
		return false
	}

	var ret bool
	if e.dragging && e.elasticCounter > NoHighlight &&
		ev.TouchIn(e.xAbs, e.yAbs, e.Width, e.Height) {
		x, y := ev.Pos()
		e.emit(EventTap, x, y)
		if e.Action != nil {
			e.Action()
			ret = true
		}
	}

	e.dragging = false
	ret = ret || e.elasticCounter > NoHighlight
	e.elasticCounter = NoHighlight
	return ret
}

func (e *Element) profile() Profile {
	if e.ctx == nil {
		return ProfileStandard
	}
	return e.ctx.Profile
}

// emit forwards an interaction event to the context's EntityStore.
func (e *Element) emit(typ EventType, x, y int) {
	if e.EntityID == 0 || e.ctx == nil || e.ctx.Store == nil {
		return
	}
	e.ctx.Store.EmitEvent(InteractionEvent{Type: typ, EntityID: e.EntityID, X: x, Y: y})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
