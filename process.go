package sprig

// Process feeds ev through the touch state machine of this element and then
// of every child, in index order. It reports whether anything in the subtree
// needs a redraw, including a pending MarkRedraw request, which is consumed.
//
// A bound action may append or remove siblings while the loop is running.
// The index is checked against the current length before every access, so
// the loop never reads past the end, but a shifted child can be skipped or
// visited twice in that frame.
func (e *Element) Process(ev InputEvents) bool {
	if e.Hidden {
		return false
	}

	var ret bool
	if e.Touchable {
		ret = e.OnTouchDown(ev) || ret
		ret = e.OnTouchDrag(ev) || ret
		ret = e.OnTouchUp(ev) || ret
	}

	for i := 0; i < len(e.children); i++ {
		child := e.children[i]
		if child == nil {
			continue
		}
		ret = child.Process(ev) || ret
	}

	ret = ret || e.needsRedraw
	e.needsRedraw = false
	return ret
}
