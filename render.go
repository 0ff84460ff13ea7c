package sprig

// Renderer is the drawing backend an element tree renders through. All
// coordinates are absolute screen coordinates.
type Renderer interface {
	// FillRect fills r with c, alpha blended over existing content.
	FillRect(r Rect, c Color)
	// StrokeRect draws a one pixel outline along the edges of r.
	StrokeRect(r Rect, c Color)
}

// Render resolves the absolute position from parent, renders every child in
// insertion order (later children paint over earlier ones) and then draws
// this element's press highlight on top of them.
func (e *Element) Render(parent *Element) {
	if e.Hidden {
		return
	}

	// Must run before the children resolve their own positions.
	e.RecalcPosition(parent)

	for _, child := range e.children {
		child.Render(e)
	}

	e.drawHighlight()
}

// drawHighlight draws the touch feedback overlay for the current elastic
// counter: a translucent wash above ThickHighlight, an outline above
// NoHighlight, and a thick graded border at exactly ThickHighlight.
func (e *Element) drawHighlight() {
	if !e.Touchable || e.elasticCounter <= NoHighlight {
		return
	}
	if e.ctx == nil || e.ctx.Renderer == nil {
		return
	}
	r := e.ctx.Renderer
	d := e.Bounds().Inset(-HighlightInset)

	if e.elasticCounter > ThickHighlight {
		r.FillRect(d, highlightWash)
	}

	r.StrokeRect(d, highlightOutline)

	if e.elasticCounter == ThickHighlight {
		for i := 1; i < HighlightInset; i++ {
			r.StrokeRect(d.Inset(i), thickBorderColor(i))
		}
	}
}

// thickBorderColor returns the outline color of the i-th inner ring of the
// thick border.
func thickBorderColor(i int) Color {
	return RGBA8(
		uint8(0x66-i*10),
		uint8(0x7c+i*20),
		uint8(0x89+i*10),
		0xff,
	)
}
