package sprig

import "time"

// Stage is the driver that owns a set of root widgets and the Context they
// share. Each frame it dispatches the input batch to every root and renders
// only when something reported a change.
//
//	stage := sprig.NewStage(cfg)
//	stage.Bind(renderer, window)
//	stage.AddRoot(screen)
//	// per frame:
//	stage.Update(dt, events...)
//	stage.Draw()
type Stage struct {
	cfg     Config
	ctx     *Context
	roots   []Widget
	settler *Settler
	debug   bool

	needsRender bool

	injectQueue     []Event
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewStage creates a stage for cfg. The first Draw always renders.
func NewStage(cfg Config) *Stage {
	if !cfg.Profile.Valid() {
		cfg.Profile = ProfileStandard
	}
	s := &Stage{
		cfg:         cfg,
		ctx:         &Context{Profile: cfg.Profile},
		settler:     NewSettler(cfg.HighlightSettle),
		needsRender: true,
	}
	if cfg.Debug {
		s.SetDebugMode(true)
	}
	return s
}

// Config returns the stage's configuration.
func (s *Stage) Config() Config {
	return s.cfg
}

// Context returns the context shared by every root.
func (s *Stage) Context() *Context {
	return s.ctx
}

// Bind sets the renderer and window and propagates them to every root. Call
// it again whenever the rendering surface is recreated.
func (s *Stage) Bind(r Renderer, w Window) {
	ctx := *s.ctx
	ctx.Renderer = r
	ctx.Window = w
	s.rebind(&ctx)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Stage) SetEntityStore(store EntityStore) {
	ctx := *s.ctx
	ctx.Store = store
	s.rebind(&ctx)
}

func (s *Stage) rebind(ctx *Context) {
	s.ctx = ctx
	for _, root := range s.roots {
		root.Base().SetContext(ctx)
	}
	s.needsRender = true
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics, tree depth and child count warnings are printed, and
// per-frame timing stats are logged.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Settler returns the stage's highlight decay ticker.
func (s *Stage) Settler() *Settler {
	return s.settler
}

// AddRoot adds w as a root, bound to the stage context. Adding a root twice
// is a no-op.
func (s *Stage) AddRoot(w Widget) {
	if w == nil {
		panic("sprig: cannot add nil root")
	}
	for _, r := range s.roots {
		if r.Base() == w.Base() {
			return
		}
	}
	s.roots = append(s.roots, w)
	w.Base().SetContext(s.ctx)
	s.needsRender = true
}

// RemoveRoot removes w from the stage roots. No-op if absent.
func (s *Stage) RemoveRoot(w Widget) {
	for i, r := range s.roots {
		if r.Base() == w.Base() {
			copy(s.roots[i:], s.roots[i+1:])
			s.roots[len(s.roots)-1] = nil
			s.roots = s.roots[:len(s.roots)-1]
			s.needsRender = true
			return
		}
	}
}

// Roots returns the root list. The returned slice MUST NOT be mutated.
func (s *Stage) Roots() []Widget {
	return s.roots
}

// Update advances the highlight decay by dt seconds and dispatches input to
// every root. One queued injected event is consumed ahead of events. A frame
// without events still dispatches an idle event so pending redraw requests
// are collected. It returns whether a render is pending.
func (s *Stage) Update(dt float64, events ...Event) bool {
	var stats debugStats
	var t0 time.Time

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	if s.debug {
		t0 = time.Now()
	}
	s.settler.Update(dt, s.roots)
	if s.debug {
		stats.settleTime = time.Since(t0)
		t0 = time.Now()
	}

	if len(s.injectQueue) > 0 {
		ev := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		events = append([]Event{ev}, events...)
	}
	if len(events) == 0 {
		events = []Event{{Kind: TouchNone}}
	}

	redraw := false
	for _, ev := range events {
		if s.dispatch(ev) {
			redraw = true
		}
	}
	if redraw {
		s.needsRender = true
	}

	if s.debug {
		stats.processTime = time.Since(t0)
		stats.eventCount = len(events)
		stats.redraw = redraw
		s.debugLogUpdate(stats)
	}
	return s.needsRender
}

// dispatch runs one event through every root. The root list is indexed
// afresh each step since an action may add or remove roots.
func (s *Stage) dispatch(ev Event) bool {
	ret := false
	for i := 0; i < len(s.roots); i++ {
		ret = s.roots[i].Process(ev) || ret
	}
	return ret
}

// NeedsRender reports whether the next Draw will render.
func (s *Stage) NeedsRender() bool {
	return s.needsRender
}

// Invalidate forces the next Draw to render.
func (s *Stage) Invalidate() {
	s.needsRender = true
}

// Draw renders every root if a render is pending and reports whether it did.
func (s *Stage) Draw() bool {
	if !s.needsRender {
		return false
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	for _, root := range s.roots {
		root.Render(nil)
	}
	s.needsRender = false
	if s.debug {
		s.debugLogDraw(time.Since(t0), len(s.roots))
	}
	return true
}
