package nav

// State is the stack's animation state.
type State int

const (
	Idle State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "idle"
}

// Transition is a page change handed to the UI for animation. The history
// change it describes is committed when the UI calls Complete with its ID.
type Transition struct {
	ID   uint64
	Op   Op
	From PageID
	To   PageID
	Kind TransitionKind
}

type entry struct {
	page PageID
	kind TransitionKind // how the page was entered; reversed on pop
}

// Stack is the page history plus at most one in-flight transition. It is
// owned by the UI loop and not safe for concurrent use.
//
// Collision policy: a request for the page already being transitioned to is
// dropped; a request for any other page overrides the in-flight one, which
// is committed immediately before the new transition starts.
type Stack struct {
	history []entry
	pending *Transition
	nextID  uint64
}

// NewStack returns an empty stack. Current reports PageNone until the first
// page is shown.
func NewStack() *Stack {
	return &Stack{}
}

// Current returns the committed top of the history.
func (s *Stack) Current() PageID {
	if len(s.history) == 0 {
		return PageNone
	}
	return s.history[len(s.history)-1].page
}

// State reports whether a transition is in flight.
func (s *Stack) State() State {
	if s.pending != nil {
		return Transitioning
	}
	return Idle
}

// Pending returns the in-flight transition, if any.
func (s *Stack) Pending() (Transition, bool) {
	if s.pending == nil {
		return Transition{}, false
	}
	return *s.pending, true
}

// Depth is the number of committed history entries.
func (s *Stack) Depth() int {
	return len(s.history)
}

// History returns the committed pages, bottom first.
func (s *Stack) History() []PageID {
	out := make([]PageID, len(s.history))
	for i, e := range s.history {
		out[i] = e.page
	}
	return out
}

// Swap replaces the current page without growing the history.
func (s *Stack) Swap(target PageID, kind TransitionKind) (Transition, bool) {
	return s.request(OpSwap, target, kind)
}

// Push shows target on top of the current page so a later Pop returns to it.
func (s *Stack) Push(target PageID, kind TransitionKind) (Transition, bool) {
	return s.request(OpPush, target, kind)
}

// Pop returns to the previous page with the reverse of the transition that
// entered the current one. It does nothing on a single-entry history.
func (s *Stack) Pop() (Transition, bool) {
	hist := s.projected()
	if len(hist) < 2 {
		return Transition{}, false
	}
	top := hist[len(hist)-1]
	target := hist[len(hist)-2].page
	if s.pending != nil && s.pending.To == target {
		return Transition{}, false
	}
	s.settle()
	kind := top.kind.Reverse()
	if target == s.Current() {
		// A swap replaced the pushed page with the one below it; nothing to animate.
		kind = TransitionNone
	}
	return s.begin(OpPop, target, kind), true
}

// Complete commits the transition with the given ID and returns to Idle.
// Stale IDs from overridden transitions are ignored.
func (s *Stack) Complete(id uint64) bool {
	if s.pending == nil || s.pending.ID != id {
		return false
	}
	s.settle()
	return true
}

func (s *Stack) request(op Op, target PageID, kind TransitionKind) (Transition, bool) {
	if target == PageNone {
		return Transition{}, false
	}
	if s.pending != nil {
		if s.pending.To == target {
			return Transition{}, false
		}
		s.settle()
	}
	if target == s.Current() {
		return Transition{}, false
	}
	return s.begin(op, target, kind), true
}

func (s *Stack) begin(op Op, target PageID, kind TransitionKind) Transition {
	s.nextID++
	t := Transition{
		ID:   s.nextID,
		Op:   op,
		From: s.Current(),
		To:   target,
		Kind: kind,
	}
	if kind == TransitionNone {
		s.commit(t)
		return t
	}
	s.pending = &t
	return t
}

// settle commits the in-flight transition, if any.
func (s *Stack) settle() {
	if s.pending == nil {
		return
	}
	t := *s.pending
	s.pending = nil
	s.commit(t)
}

func (s *Stack) commit(t Transition) {
	s.history = apply(s.history, t)
}

// projected is the history as it will be once the in-flight transition commits.
func (s *Stack) projected() []entry {
	hist := make([]entry, len(s.history))
	copy(hist, s.history)
	if s.pending == nil {
		return hist
	}
	return apply(hist, *s.pending)
}

func apply(hist []entry, t Transition) []entry {
	switch t.Op {
	case OpPush:
		return append(hist, entry{page: t.To, kind: t.Kind})
	case OpPop:
		if len(hist) > 0 {
			return hist[:len(hist)-1]
		}
		return hist
	default:
		if len(hist) == 0 {
			return append(hist, entry{page: t.To, kind: t.Kind})
		}
		hist[len(hist)-1] = entry{page: t.To, kind: t.Kind}
		return hist
	}
}
