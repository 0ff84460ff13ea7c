package sprig

// Screenshot queues a labeled screenshot. The backend captures the frame at
// the end of its next draw and drains the queue with TakeScreenshots.
func (s *Stage) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// TakeScreenshots returns the queued screenshot labels and empties the queue.
func (s *Stage) TakeScreenshots() []string {
	if len(s.screenshotQueue) == 0 {
		return nil
	}
	labels := s.screenshotQueue
	s.screenshotQueue = nil
	return labels
}
