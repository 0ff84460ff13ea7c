package sprig

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// settleTween tracks one element's decay and the value last written to it.
type settleTween struct {
	tween *gween.Tween
	last  int
	gen   uint32
}

// Settler decays the highlight of a held press from DeepHighlight to
// ThickHighlight, so a long press settles from a wash into a thick border.
// It lives outside Element: the element only exposes its counter, and the
// Stage calls Update once per frame before dispatching input.
//
// A tween is dropped as soon as the element's counter differs from the value
// the Settler last wrote, which happens on touch up, on drift cancellation
// and on a fresh press.
type Settler struct {
	Duration float32
	Ease     ease.TweenFunc

	active map[*Element]*settleTween
	gen    uint32
}

// NewSettler creates a Settler with the given decay time in seconds. A
// non-positive duration disables decay.
func NewSettler(duration float64) *Settler {
	return &Settler{
		Duration: float32(duration),
		Ease:     ease.OutQuad,
		active:   make(map[*Element]*settleTween),
	}
}

// Update advances every running decay by dt seconds and starts a decay for
// each held press that is still at DeepHighlight. Changed elements are
// marked for redraw.
func (s *Settler) Update(dt float64, roots []Widget) {
	if s.Duration <= 0 {
		return
	}
	s.gen++
	for _, root := range roots {
		s.walk(root.Base(), float32(dt))
	}
	// Forget elements that left the tree or were hidden.
	for e, st := range s.active {
		if st.gen != s.gen {
			delete(s.active, e)
		}
	}
}

// Active returns the number of running decays.
func (s *Settler) Active() int {
	return len(s.active)
}

func (s *Settler) walk(e *Element, dt float32) {
	if e.Hidden || e.disposed {
		return
	}
	if e.Touchable {
		s.step(e, dt)
	}
	for _, child := range e.children {
		s.walk(child.Base(), dt)
	}
}

func (s *Settler) step(e *Element, dt float32) {
	st, ok := s.active[e]
	if ok && e.elasticCounter != st.last {
		delete(s.active, e)
		ok = false
	}

	if !ok {
		if e.dragging && e.elasticCounter == DeepHighlight {
			s.active[e] = &settleTween{
				tween: gween.New(DeepHighlight, ThickHighlight, s.Duration, s.Ease),
				last:  DeepHighlight,
				gen:   s.gen,
			}
		}
		return
	}

	st.gen = s.gen
	val, done := st.tween.Update(dt)
	v := int(math.Round(float64(val)))
	if done {
		v = ThickHighlight
	}
	if v != st.last {
		e.SetElasticCounter(v)
		e.MarkRedraw()
		st.last = v
	}
	if done {
		delete(s.active, e)
	}
}
