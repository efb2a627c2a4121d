// Package ui implements the kiosk launcher shell as a Bubble Tea program.
//
// # Layout
//
// The screen is three stacked regions:
//
//   - Top bar: the first two corner buttons and a clock
//   - Page area: the visible page, or two pages while a slide runs
//   - Bottom bar: the last two corner buttons and the launch spinner or short help
//
// Corner buttons are named after the page they open. Clicking one resolves
// the name through nav.Registry and applies the page's push or swap policy to
// the nav.Stack. The Battery and WiFi buttons double as status icons: two
// periodic presenters replace their images from the battery sampler and the
// Wi-Fi probe.
//
// # Pages
//
// Each page (Apps, Library, Settings, Power) is built once and kept for the
// life of the shell. Navigation only enters and exits pages, so selection and
// scroll state survive push and pop.
//
// # Timers
//
// All timers are single-shot tea.Tick commands rescheduled from Update. Each
// timer carries a generation number; stopping or restarting a timer bumps the
// number so ticks already in flight are dropped. Quitting stops every timer
// and tears the bars down before the program exits.
//
// # Mouse
//
// Bar buttons, grid items and power actions are bubblezone zones. Motion sets
// the hover zone, a left press sets the pressed zone and triggers the click,
// release clears the pressed look.
package ui
