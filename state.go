package gui

// InteractionState persists hot/active widget IDs between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable, and there
// is one per GUI instance rather than one per process.
//
// Protocol per clickable widget:
//   - pointer inside last frame's bounds: the widget is hot this frame
//   - press edge while hot: the widget becomes active
//   - release edge while active: clicked if still hot, active cleared either way
//
// Hot is re-derived every frame; active survives until a release.
type InteractionState struct {
	hot          ID // resolved at the end of the previous frame
	hotThisFrame ID // staged by this frame's hit tests, last hit wins
	active       ID // widget holding the press, 0 when none

	activeSeen bool // the active widget was polled this frame
}

// Interaction is the outcome of polling one widget.
type Interaction struct {
	Hovered bool // pointer inside the widget this frame
	Active  bool // widget holds the press lock after this poll
	Clicked bool // press and release both landed on the widget
}

// Hot returns the widget that was under the pointer last frame.
func (s *InteractionState) Hot() ID { return s.hot }

// Active returns the widget holding the press lock, or 0.
func (s *InteractionState) Active() ID { return s.active }

// Interact polls widget id against the pointer.
// bounds is the widget's geometry from the previous frame; hasBounds is
// false for a widget that did not exist last frame, which is never hovered.
func (s *InteractionState) Interact(id ID, bounds Rect, hasBounds bool, in InputSource) Interaction {
	if in == nil {
		in = noInput{}
	}
	hovered := hasBounds && bounds.Contains(in.MousePos())
	if hovered {
		s.hotThisFrame = id
	}

	if hovered && in.MouseJustPressed(MouseButtonLeft) {
		s.active = id
	}

	var clicked bool
	if s.active == id {
		s.activeSeen = true
		if in.MouseJustReleased(MouseButtonLeft) {
			clicked = hovered
			s.active = 0
		}
	}

	return Interaction{
		Hovered: hovered,
		Active:  s.active == id,
		Clicked: clicked,
	}
}

// EndFrame promotes this frame's hit into hot and drops a press lock whose
// widget was not built during a frame that saw a release.
func (s *InteractionState) EndFrame(in InputSource) {
	if in == nil {
		in = noInput{}
	}
	s.hot = s.hotThisFrame
	s.hotThisFrame = 0

	if s.active != 0 && !s.activeSeen && in.MouseJustReleased(MouseButtonLeft) {
		s.active = 0
	}
	s.activeSeen = false
}

// Reset clears all interaction state.
func (s *InteractionState) Reset() {
	*s = InteractionState{}
}
