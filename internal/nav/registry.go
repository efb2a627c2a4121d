package nav

import "sort"

// Policy is how a click on a page's button navigates.
type Policy struct {
	Op   Op
	Kind TransitionKind
}

var defaultPolicy = Policy{Op: OpSwap, Kind: TransitionForward}

// Registry resolves button names to pages. It is built once and never
// modified, so it can be shared freely.
type Registry struct {
	aliases  map[string]PageID
	policies map[PageID]Policy
}

// DefaultRegistry returns the launcher's alias and policy table: WiFi opens
// Settings and Battery opens Power, both pushed so they can be backed out of.
func DefaultRegistry() *Registry {
	return NewRegistry(
		map[string]PageID{
			"Apps":        PageApps,
			"AppsLibrary": PageLibrary,
			"Settings":    PageSettings,
			"WiFi":        PageSettings,
			"Power":       PagePower,
			"Battery":     PagePower,
		},
		map[PageID]Policy{
			PageSettings: {Op: OpPush, Kind: TransitionForward},
			PagePower:    {Op: OpPush, Kind: TransitionBack},
		},
	)
}

// NewRegistry copies the given tables into an immutable registry.
func NewRegistry(aliases map[string]PageID, policies map[PageID]Policy) *Registry {
	r := &Registry{
		aliases:  make(map[string]PageID, len(aliases)),
		policies: make(map[PageID]Policy, len(policies)),
	}
	for name, id := range aliases {
		if id == PageNone {
			continue
		}
		r.aliases[name] = id
	}
	for id, p := range policies {
		r.policies[id] = p
	}
	return r
}

// Resolve maps a button or config name to its page.
func (r *Registry) Resolve(name string) (PageID, bool) {
	id, ok := r.aliases[name]
	return id, ok
}

// Policy returns the navigation policy for a page. Pages without an entry swap
// with a forward transition.
func (r *Registry) Policy(id PageID) Policy {
	if p, ok := r.policies[id]; ok {
		return p
	}
	return defaultPolicy
}

// Aliases returns every registered name for a page, sorted.
func (r *Registry) Aliases(id PageID) []string {
	var names []string
	for name, target := range r.aliases {
		if target == id {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
