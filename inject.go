package sprig

// InjectPress queues a touch down at the given screen coordinates. Injected
// events are consumed one per Update, ahead of that frame's real input.
func (s *Stage) InjectPress(x, y int) {
	s.injectQueue = append(s.injectQueue, Event{Kind: TouchDown, X: x, Y: y})
}

// InjectMove queues a touch drag to the given screen coordinates. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (s *Stage) InjectMove(x, y int) {
	s.injectQueue = append(s.injectQueue, Event{Kind: TouchDrag, X: x, Y: y})
}

// InjectRelease queues a touch up at the given screen coordinates.
func (s *Stage) InjectRelease(x, y int) {
	s.injectQueue = append(s.injectQueue, Event{Kind: TouchUp, X: x, Y: y})
}

// InjectTap is a convenience that queues a press followed by a release at the
// same screen coordinates. Consumes two frames.
func (s *Stage) InjectTap(x, y int) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes `frames` frames. Minimum frames is
// 2 (press + release).
func (s *Stage) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		x := fromX + (toX-fromX)*i/(steps+1)
		y := fromY + (toY-fromY)*i/(steps+1)
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected events.
func (s *Stage) Pending() int {
	return len(s.injectQueue)
}
