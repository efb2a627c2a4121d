// Package app is the composition root of the kiosk launcher.
//
// Run wires the pieces in order:
//
//  1. config.Load reads the layout (TOML, or YAML/JSON by extension)
//  2. logging.New opens the file logger
//  3. prefs.Load restores theme and label preferences
//  4. assets.Loader preloads every icon; a file that exists but does not
//     decode aborts startup, a missing file falls back to a glyph
//  5. the battery sampler starts on its own goroutine
//  6. ui.Run blocks until the user quits or the context is cancelled
//  7. the sampler is stopped within the configured grace period
//
// Shutdown order matters: the UI stops its timers before returning, so the
// only goroutine left is the sampler. A sampler blocked in a battery read is
// logged and leaked rather than holding up the exit.
//
// Probe runs the same hardware selection once without a UI and prints the
// readings, which is handy when bringing up a new device.
package app
