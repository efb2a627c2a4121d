// Package config loads the launcher layout and runtime settings.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/kiosk/config.toml (default)
//  3. If the config file doesn't exist, fall back to the built-in layout
//  4. If the file exists but fields are missing/empty, use defaults
//
// The extension picks the decoder: .toml (default) or .yaml/.yml/.json.
// JSON goes through the YAML decoder, so existing JSON launcher layouts load
// unchanged.
//
// # Layout
//
// Only the page named "Apps" is read in detail. Its items are forwarded to the
// Apps page and the library page, and its cornerButtons must hold exactly four
// entries: the first two go to the top bar, the last two to the bottom bar.
// Any other count fails at load time with ErrCornerButtons instead of
// indexing past the end later.
//
//	defaultPage = "Apps"
//	assetRoot = "assets"          # relative to the config file
//
//	[status]
//	sampleInterval = "2s"         # battery sampler
//	batteryRefresh = "1s"         # battery icon
//	wifiRefresh = "5s"            # Wi-Fi icon
//	spinnerFrame = "1s"
//	stopGrace = "100ms"
//
//	[[pages]]
//	name = "Apps"
//	[[pages.items]]
//	name = "Terminal"
//	icon = "terminal.png"
//	shell = "x-terminal-emulator"
//	[[pages.cornerButtons]]
//	name = "WiFi"
//	icon = "wifiStrength0.png"
//
// An unknown defaultPage is not an error here; the shell starts with no page
// shown.
package config
