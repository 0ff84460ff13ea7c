package sprig

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func newLinearSettler() *Settler {
	s := NewSettler(1)
	s.Ease = ease.Linear
	return s
}

func TestSettlerDecaysToThick(t *testing.T) {
	s := newLinearSettler()
	e := newBox("e", 0, 0, 100, 100)
	roots := []Widget{e}
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})

	// First frame only starts the decay.
	s.Update(0.5, roots)
	if e.ElasticCounter() != DeepHighlight {
		t.Fatalf("ElasticCounter = %d, want %d", e.ElasticCounter(), DeepHighlight)
	}
	if s.Active() != 1 {
		t.Fatalf("Active = %d, want 1", s.Active())
	}

	s.Update(0.5, roots)
	if e.ElasticCounter() != 175 {
		t.Errorf("ElasticCounter = %d, want 175", e.ElasticCounter())
	}
	if !e.NeedsRedraw() {
		t.Error("decay step should request a redraw")
	}
	e.Process(Event{})

	s.Update(0.5, roots)
	if e.ElasticCounter() != ThickHighlight {
		t.Errorf("ElasticCounter = %d, want %d", e.ElasticCounter(), ThickHighlight)
	}
	if s.Active() != 0 {
		t.Errorf("Active = %d, want 0 after settling", s.Active())
	}

	// Settled presses stay put.
	e.Process(Event{})
	s.Update(0.5, roots)
	if e.ElasticCounter() != ThickHighlight || e.NeedsRedraw() {
		t.Error("settled press should not change further")
	}
}

func TestSettlerDefaultEaseReachesThick(t *testing.T) {
	s := NewSettler(0.25)
	e := newBox("e", 0, 0, 100, 100)
	roots := []Widget{e}
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})

	for i := 0; i < 30; i++ {
		s.Update(1.0/60, roots)
	}
	if e.ElasticCounter() != ThickHighlight {
		t.Errorf("ElasticCounter = %d, want %d", e.ElasticCounter(), ThickHighlight)
	}
}

func TestSettlerDroppedOnRelease(t *testing.T) {
	s := newLinearSettler()
	e := newBox("e", 0, 0, 100, 100)
	roots := []Widget{e}
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})
	s.Update(0.25, roots)
	s.Update(0.25, roots)

	e.Process(Event{Kind: TouchUp, X: 10, Y: 10})
	s.Update(0.25, roots)
	if s.Active() != 0 {
		t.Errorf("Active = %d, want 0 after release", s.Active())
	}
	if e.ElasticCounter() != NoHighlight {
		t.Errorf("ElasticCounter = %d, want 0", e.ElasticCounter())
	}
}

func TestSettlerDroppedOnCancel(t *testing.T) {
	s := newLinearSettler()
	e := newBox("e", 0, 0, 400, 400)
	roots := []Widget{e}
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})
	s.Update(0.25, roots)
	s.Update(0.25, roots)

	e.Process(Event{Kind: TouchDrag, X: 200, Y: 10})
	s.Update(0.25, roots)
	s.Update(0.25, roots)
	if e.ElasticCounter() != NoHighlight {
		t.Errorf("cancelled press should stay cleared, got %d", e.ElasticCounter())
	}
	if s.Active() != 0 {
		t.Errorf("Active = %d, want 0", s.Active())
	}
}

func TestSettlerForgetsHiddenElements(t *testing.T) {
	s := newLinearSettler()
	root := NewElement("root")
	e := newBox("e", 0, 0, 100, 100)
	root.Append(e)
	roots := []Widget{root}
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})
	s.Update(0.25, roots)
	if s.Active() != 1 {
		t.Fatalf("Active = %d, want 1", s.Active())
	}

	root.Hide()
	s.Update(0.25, roots)
	if s.Active() != 0 {
		t.Errorf("Active = %d, want 0 for hidden subtree", s.Active())
	}
	if e.ElasticCounter() != DeepHighlight {
		t.Errorf("hidden element should keep its counter, got %d", e.ElasticCounter())
	}
}

func TestSettlerDisabled(t *testing.T) {
	s := NewSettler(0)
	e := newBox("e", 0, 0, 100, 100)
	e.Process(Event{Kind: TouchDown, X: 10, Y: 10})
	for i := 0; i < 10; i++ {
		s.Update(1, []Widget{e})
	}
	if e.ElasticCounter() != DeepHighlight {
		t.Errorf("ElasticCounter = %d, want %d with decay disabled", e.ElasticCounter(), DeepHighlight)
	}
}
