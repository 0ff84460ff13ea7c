package sprig

import "testing"

// newBox creates a touchable element at (x, y) with the given size and
// resolves its absolute position as a root.
func newBox(name string, x, y, w, h int) *Element {
	e := NewElement(name)
	e.Position(x, y)
	e.Width, e.Height = w, h
	e.Touchable = true
	e.RecalcPosition(nil)
	return e
}

// --- Constructor defaults ---

func TestNewElementDefaults(t *testing.T) {
	e := NewElement("test")
	if e.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if e.Name != "test" {
		t.Errorf("Name = %q, want %q", e.Name, "test")
	}
	if e.Scale != 1 {
		t.Errorf("Scale = %v, want 1", e.Scale)
	}
	if e.Touchable || e.Hidden || e.Dragging() || e.NeedsRedraw() {
		t.Error("new element should be idle, visible and not touchable")
	}
	if e.ElasticCounter() != NoHighlight {
		t.Errorf("ElasticCounter = %d, want 0", e.ElasticCounter())
	}
	if e.Context() != nil {
		t.Error("new element should have no context")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestHideUnhide(t *testing.T) {
	e := NewElement("e")
	e.Hide()
	if !e.Hidden {
		t.Error("Hide should set Hidden")
	}
	e.Unhide()
	if e.Hidden {
		t.Error("Unhide should clear Hidden")
	}
}

// --- Append ---

func TestAppendBasic(t *testing.T) {
	parent := NewElement("parent")
	child := NewElement("child")
	parent.Append(child)

	if child.Parent() != parent {
		t.Error("child.Parent() should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != Widget(child) {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAppendIdempotent(t *testing.T) {
	parent := NewElement("parent")
	child := NewElement("child")
	parent.Append(child)
	parent.Append(child)

	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
}

func TestAppendKeepsInsertionOrder(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	parent.Append(a)
	parent.Append(b)
	parent.Append(c)
	parent.Append(a)

	want := []*Element{a, b, c}
	for i, w := range want {
		if got := parent.ChildAt(i).Base(); got != w {
			t.Errorf("ChildAt(%d) = %q, want %q", i, got.Name, w.Name)
		}
	}
}

func TestAppendEmbeddedWidget(t *testing.T) {
	parent := NewElement("parent")
	w := newPaintWidget("w", nil)
	parent.Append(w)
	parent.Append(w)

	if parent.NumChildren() != 1 {
		t.Fatalf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if w.Parent() != parent {
		t.Error("embedded element should point at parent")
	}
	// Appending the embedded element directly is the same identity.
	parent.Append(&w.Element)
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1 after appending the embedded element", parent.NumChildren())
	}
}

func TestAppendReparents(t *testing.T) {
	p1 := NewElement("p1")
	p2 := NewElement("p2")
	child := NewElement("child")

	p1.Append(child)
	p2.Append(child)

	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent() != p2 {
		t.Error("child.Parent() should be p2")
	}
}

func TestAppendCyclePanics(t *testing.T) {
	parent := NewElement("parent")
	child := NewElement("child")
	grandchild := NewElement("grandchild")
	parent.Append(child)
	child.Append(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.Append(parent)
}

func TestAppendSelfPanics(t *testing.T) {
	e := NewElement("e")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic appending element to itself")
		}
	}()
	e.Append(e)
}

func TestAppendNilPanics(t *testing.T) {
	e := NewElement("e")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child")
		}
	}()
	e.Append(nil)
}

func TestAppendPropagatesContext(t *testing.T) {
	ctx := &Context{Profile: ProfileCompact}
	parent := NewElement("parent")
	parent.SetContext(ctx)

	child := NewElement("child")
	grandchild := NewElement("grandchild")
	child.Append(grandchild)
	parent.Append(child)

	if child.Context() != ctx || grandchild.Context() != ctx {
		t.Error("Append should propagate the parent's context to the whole subtree")
	}
}

// --- Remove ---

func TestRemove(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	parent.Append(a)
	parent.Append(b)

	parent.Remove(a)
	if parent.NumChildren() != 1 || parent.ChildAt(0).Base() != b {
		t.Fatal("Remove should leave only b")
	}
	if a.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if a.IsDisposed() {
		t.Error("Remove must not dispose")
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	parent := NewElement("parent")
	other := NewElement("other")
	a := NewElement("a")
	parent.Append(a)
	other.Append(NewElement("x"))

	parent.Remove(other)
	parent.Remove(nil)
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
}

func TestRemoveAll(t *testing.T) {
	parent := NewElement("parent")
	a := NewElement("a")
	b := NewElement("b")
	parent.Append(a)
	parent.Append(b)

	parent.RemoveAll()
	if parent.NumChildren() != 0 {
		t.Errorf("NumChildren = %d, want 0", parent.NumChildren())
	}
	if a.Parent() != nil || b.Parent() != nil {
		t.Error("children should be detached")
	}
	if a.IsDisposed() || b.IsDisposed() {
		t.Error("RemoveAll must not dispose children")
	}
	// Detached children can join another tree.
	other := NewElement("other")
	other.Append(a)
	if a.Parent() != other {
		t.Error("detached child should be appendable elsewhere")
	}
}

// --- Context ---

func TestSetContextRecursive(t *testing.T) {
	root := NewElement("root")
	mid := NewElement("mid")
	leaf := NewElement("leaf")
	root.Append(mid)
	mid.Append(leaf)

	ctx := &Context{Profile: ProfileStandard}
	root.SetContext(ctx)
	for _, e := range []*Element{root, mid, leaf} {
		if e.Context() != ctx {
			t.Errorf("%s: context not propagated", e.Name)
		}
	}

	// Rebinding replaces the handles everywhere.
	ctx2 := &Context{Profile: ProfileCompact}
	root.SetContext(ctx2)
	if leaf.Context() != ctx2 {
		t.Error("rebinding should reach the leaf")
	}
}

// --- Elastic counter ---

func TestSetElasticCounterClamps(t *testing.T) {
	e := NewElement("e")
	e.SetElasticCounter(-5)
	if e.ElasticCounter() != NoHighlight {
		t.Errorf("ElasticCounter = %d, want 0", e.ElasticCounter())
	}
	e.SetElasticCounter(ThickHighlight)
	if e.ElasticCounter() != ThickHighlight {
		t.Errorf("ElasticCounter = %d, want %d", e.ElasticCounter(), ThickHighlight)
	}
}

// --- Dispose ---

func TestDispose(t *testing.T) {
	parent := NewElement("parent")
	child := NewElement("child")
	grandchild := NewElement("grandchild")
	parent.Append(child)
	child.Append(grandchild)
	child.Action = func() {}

	child.Dispose()

	if parent.NumChildren() != 0 {
		t.Error("disposed child should be removed from parent")
	}
	if !child.IsDisposed() || !grandchild.IsDisposed() {
		t.Error("Dispose should mark the subtree disposed")
	}
	if child.Action != nil {
		t.Error("Dispose should drop the action")
	}
	if grandchild.Parent() != nil {
		t.Error("disposed descendants should be detached")
	}

	// Second dispose is a no-op.
	child.Dispose()
}
