// Package nav holds page identity, the alias registry and the navigation
// stack. It knows nothing about rendering: the UI animates the transitions
// the stack hands back and reports when they finish.
package nav

// PageID identifies one of the shell's long-lived pages.
type PageID int

const (
	PageNone PageID = iota
	PageApps
	PageLibrary
	PageSettings
	PagePower
)

var pageNames = map[PageID]string{
	PageApps:     "Apps",
	PageLibrary:  "AppsLibrary",
	PageSettings: "Settings",
	PagePower:    "Power",
}

// String returns the canonical page name, or "" for PageNone.
func (p PageID) String() string {
	return pageNames[p]
}

// Pages lists every real page in display order.
func Pages() []PageID {
	return []PageID{PageApps, PageLibrary, PageSettings, PagePower}
}

// TransitionKind describes how a page change is animated. It never affects
// the resulting stack state.
type TransitionKind int

const (
	TransitionNone TransitionKind = iota
	TransitionForward
	TransitionBack
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionForward:
		return "forward"
	case TransitionBack:
		return "back"
	default:
		return "none"
	}
}

// Reverse returns the opposite direction, used when popping a pushed page.
func (k TransitionKind) Reverse() TransitionKind {
	switch k {
	case TransitionForward:
		return TransitionBack
	case TransitionBack:
		return TransitionForward
	default:
		return TransitionNone
	}
}

// Op is the history change a navigation request performs.
type Op int

const (
	OpSwap Op = iota
	OpPush
	OpPop
)

func (o Op) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	default:
		return "swap"
	}
}
