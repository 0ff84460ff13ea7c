package sprig

// Widget is the capability set every scene graph entry provides. *Element
// implements it; concrete widgets embed Element and override Process or
// Render, calling through to the embedded methods.
type Widget interface {
	// Process runs input handling for the subtree and reports whether the
	// screen needs to be redrawn.
	Process(ev InputEvents) bool
	// Render draws the subtree. parent is nil for a root.
	Render(parent *Element)
	// Base returns the embedded Element that carries tree state.
	Base() *Element
}

// Action is a callback bound to an element and invoked on a committed tap.
type Action func()

// Context holds the shared handles propagated through a subtree. Elements
// reference a Context; they never own it.
type Context struct {
	Renderer Renderer
	Window   Window
	Profile  Profile
	Store    EntityStore
}

// Window is the platform surface an element tree is shown in.
type Window interface {
	Size() (width, height int)
}

// elementIDCounter is a plain counter (no atomic, sprig is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a single entry in the scene graph: a positioned, sized,
// optionally touchable rectangle with an ordered list of children.
type Element struct {
	// Identity
	ID       uint32
	Name     string
	EntityID uint32
	UserData any

	// Hierarchy
	parent   *Element
	children []Widget

	// Offset relative to the parent, or to the screen for a root.
	X, Y int
	// Extent, set by the owner or a concrete widget.
	Width, Height int

	// Transform hints for concrete widgets. Not applied here.
	Scale float64
	Angle float64

	// Absolute position, resolved during Render.
	xAbs, yAbs int

	Touchable bool
	Hidden    bool
	Action    Action

	// Touch state
	dragging       bool
	lastMouseX     int
	lastMouseY     int
	elasticCounter int
	needsRedraw    bool

	ctx      *Context
	disposed bool
}

// NewElement creates an element with default values.
func NewElement(name string) *Element {
	e := &Element{}
	e.Init(name)
	return e
}

// Init sets the default field values. Concrete widgets that embed Element
// by value call it from their constructors.
func (e *Element) Init(name string) {
	e.ID = nextElementID()
	e.Name = name
	e.Scale = 1
}

// Base implements Widget.
func (e *Element) Base() *Element {
	return e
}

// Hide excludes the element and its subtree from Process and Render.
func (e *Element) Hide() { e.Hidden = true }

// Unhide reverses Hide.
func (e *Element) Unhide() { e.Hidden = false }

// --- Tree manipulation ---

// Append adds child to the end of the child list and propagates this
// element's context into the child's subtree. Appending a child that is
// already present is a no-op. A child owned by another element is detached
// from it first.
// Panics if child is nil or child is an ancestor of e (cycle).
func (e *Element) Append(child Widget) {
	if child == nil || child.Base() == nil {
		panic("sprig: cannot append nil child")
	}
	c := child.Base()
	if globalDebug {
		debugCheckDisposed(e, "Append (parent)")
		debugCheckDisposed(c, "Append (child)")
	}
	if e.indexOf(c) >= 0 {
		return
	}
	if isAncestor(c, e) {
		panic("sprig: appending child would create a cycle")
	}
	if c.parent != nil {
		c.parent.removeChildByPtr(c)
	}
	c.parent = e
	e.children = append(e.children, child)
	c.SetContext(e.ctx)
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(e)
	}
}

// Remove detaches the first child identical to child. No-op if child is
// not present.
func (e *Element) Remove(child Widget) {
	if child == nil {
		return
	}
	c := child.Base()
	if e.removeChildByPtr(c) {
		c.parent = nil
	}
}

// RemoveAll detaches every child. Children are NOT disposed.
func (e *Element) RemoveAll() {
	for i, child := range e.children {
		child.Base().parent = nil
		e.children[i] = nil
	}
	e.children = e.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (e *Element) Children() []Widget {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// ChildAt returns the child at the given index.
func (e *Element) ChildAt(index int) Widget {
	return e.children[index]
}

// Parent returns the element this one is attached to, or nil.
func (e *Element) Parent() *Element {
	return e.parent
}

// SetContext binds ctx to this element and every descendant. It is called by
// Append and by owners that recreate the rendering surface.
func (e *Element) SetContext(ctx *Context) {
	e.ctx = ctx
	for _, child := range e.children {
		child.Base().SetContext(ctx)
	}
}

// Context returns the bound context, or nil.
func (e *Element) Context() *Context {
	return e.ctx
}

// --- Geometry ---

// Position sets the offset relative to the parent. It does not request a
// redraw.
func (e *Element) Position(x, y int) {
	e.X = x
	e.Y = y
}

// RecalcPosition resolves the absolute position from parent's absolute
// position. A nil parent places the element relative to the screen origin.
func (e *Element) RecalcPosition(parent *Element) {
	if parent != nil {
		e.xAbs = parent.xAbs + e.X
		e.yAbs = parent.yAbs + e.Y
	} else {
		e.xAbs = e.X
		e.yAbs = e.Y
	}
}

// AbsPosition returns the absolute position from the most recent render pass.
func (e *Element) AbsPosition() (x, y int) {
	return e.xAbs, e.yAbs
}

// Bounds returns the absolute bounding rectangle from the most recent render
// pass.
func (e *Element) Bounds() Rect {
	return Rect{X: e.xAbs, Y: e.yAbs, Width: e.Width, Height: e.Height}
}

// --- Redraw and highlight state ---

// MarkRedraw requests a redraw. The request is reported by the next Process
// call and then cleared.
func (e *Element) MarkRedraw() {
	e.needsRedraw = true
}

// NeedsRedraw reports whether a redraw request is pending.
func (e *Element) NeedsRedraw() bool {
	return e.needsRedraw
}

// Dragging reports whether a touch down on this element has not yet been
// followed by a touch up.
func (e *Element) Dragging() bool {
	return e.dragging
}

// ElasticCounter returns the current highlight intensity.
func (e *Element) ElasticCounter() int {
	return e.elasticCounter
}

// SetElasticCounter sets the highlight intensity. Negative values are
// clamped to NoHighlight.
func (e *Element) SetElasticCounter(v int) {
	if v < NoHighlight {
		v = NoHighlight
	}
	e.elasticCounter = v
}

// --- Disposal ---

// Dispose detaches this element from its parent, marks it as disposed and
// recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	if e.parent != nil {
		e.parent.Remove(e)
	}
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		c := child.Base()
		c.parent = nil
		c.dispose()
	}
	e.children = nil
	e.parent = nil
	e.ctx = nil
	e.Action = nil
	e.UserData = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Element) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (e *Element) indexOf(c *Element) int {
	for i, child := range e.children {
		if child.Base() == c {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes c from e.children without clearing c.parent.
// Uses copy+nil to avoid retaining a dangling reference in the backing array.
func (e *Element) removeChildByPtr(c *Element) bool {
	i := e.indexOf(c)
	if i < 0 {
		return false
	}
	copy(e.children[i:], e.children[i+1:])
	e.children[len(e.children)-1] = nil
	e.children = e.children[:len(e.children)-1]
	return true
}
