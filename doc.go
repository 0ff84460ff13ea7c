// Package sprig is a retained-mode scene graph for touch-driven interfaces.
//
// Every visual entry is an [Element]: a rectangle with a parent-relative
// offset, an ordered list of children, and an optional tap [Action]. Concrete
// widgets embed Element and override [Element.Render] or [Element.Process];
// children are stored as [Widget] values so overrides run during traversal.
//
//	root := sprig.NewElement("root")
//	ok := NewButton("ok") // embeds sprig.Element
//	ok.Position(20, 40)
//	ok.Action = func() { fmt.Println("ok") }
//	root.Append(ok)
//
// # Frame loop
//
// Each frame the driver calls [Element.Process] for every input event and,
// only if any call reported true, [Element.Render] with a nil parent. Process
// runs the touch state machine of each touchable element and collects
// redraw requests; Render resolves absolute positions parent first, paints
// children in insertion order, and then paints each element's press highlight
// above its children. [Stage] packages that loop together with injected input,
// scripted test runs and the highlight settle ticker.
//
// # Touch state machine
//
// A touch down inside an element's bounds starts a press and sets the
// highlight to [DeepHighlight]. Moving the pointer at least the profile's
// drag threshold (40 pixels on [ProfileStandard], 10 on [ProfileCompact])
// cancels the tap. A touch up inside the bounds of a live press runs the
// action. Every touch up returns the element to idle.
//
// # Backends
//
// Drawing and input are interfaces ([Renderer], [InputEvents], [Window]).
// The backend/ebitengine package implements them on [Ebitengine] and provides
// a Run function. The ecs module forwards interaction events to [Donburi].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sprig
