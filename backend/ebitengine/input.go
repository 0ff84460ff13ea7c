package ebitengine

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/sprig"
)

// Input samples the left mouse button and every touch once per tick and
// turns them into sprig events: a press becomes TouchDown, held movement
// becomes TouchDrag, and a release becomes TouchUp at the last known
// position.
type Input struct {
	mouseDown bool
	mouse     image.Point

	touchIDs     []ebiten.TouchID
	justPressed  []ebiten.TouchID
	justReleased []ebiten.TouchID
	touches      map[ebiten.TouchID]image.Point

	events []sprig.Event
}

// NewInput creates an input sampler.
func NewInput() *Input {
	return &Input{touches: make(map[ebiten.TouchID]image.Point)}
}

// Poll samples the current tick. The returned slice is reused by the next
// call.
func (in *Input) Poll() []sprig.Event {
	in.events = in.events[:0]
	in.pollMouse()
	in.pollTouches()
	return in.events
}

func (in *Input) pollMouse() {
	x, y := ebiten.CursorPosition()
	p := image.Pt(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.mouseDown = true
		in.mouse = p
		in.push(sprig.TouchDown, p)
	} else if in.mouseDown && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && p != in.mouse {
		in.mouse = p
		in.push(sprig.TouchDrag, p)
	}

	if in.mouseDown && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		in.mouseDown = false
		in.push(sprig.TouchUp, p)
	}
}

func (in *Input) pollTouches() {
	in.justPressed = inpututil.AppendJustPressedTouchIDs(in.justPressed[:0])
	for _, id := range in.justPressed {
		x, y := ebiten.TouchPosition(id)
		p := image.Pt(x, y)
		in.touches[id] = p
		in.push(sprig.TouchDown, p)
	}

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		last, ok := in.touches[id]
		if !ok {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		p := image.Pt(x, y)
		if p != last {
			in.touches[id] = p
			in.push(sprig.TouchDrag, p)
		}
	}

	in.justReleased = inpututil.AppendJustReleasedTouchIDs(in.justReleased[:0])
	for _, id := range in.justReleased {
		p, ok := in.touches[id]
		if !ok {
			x, y := inpututil.TouchPositionInPreviousTick(id)
			p = image.Pt(x, y)
		}
		delete(in.touches, id)
		in.push(sprig.TouchUp, p)
	}
}

func (in *Input) push(kind sprig.EventKind, p image.Point) {
	in.events = append(in.events, sprig.Event{Kind: kind, X: p.X, Y: p.Y})
}
