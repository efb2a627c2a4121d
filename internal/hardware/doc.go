// Package hardware reads battery and Wi-Fi state from the host.
//
// Battery reads go through distatus/battery (sysfs on Linux, IOKit on macOS)
// and are blocking, so they only run on the status sampler goroutine. Wi-Fi
// reads go through nl80211 via mdlayher/wifi and are cheap enough to run on the
// UI loop once per Wi-Fi refresh tick.
//
// The Simulated* types stand in for both on machines without a battery or a
// wireless interface (the --simulate flag).
package hardware
