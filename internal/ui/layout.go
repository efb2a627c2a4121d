package ui

import "time"

// Bar and icon geometry, in cells.
const (
	// BarIconWidth and BarIconHeight size the corner button icons.
	BarIconWidth  = 8
	BarIconHeight = 3

	// ItemIconWidth and ItemIconHeight size the icons of the Apps grid.
	ItemIconWidth  = 10
	ItemIconHeight = 4

	// ItemCellWidth is the width of one Apps grid cell including padding.
	ItemCellWidth = 16

	// SpinnerIconWidth and SpinnerIconHeight size the launch spinner.
	SpinnerIconWidth  = 4
	SpinnerIconHeight = 2
)

// Timing constants.
const (
	// DefaultBatteryRefresh and DefaultWifiRefresh are the presenter periods
	// used when the config leaves them unset.
	DefaultBatteryRefresh = time.Second
	DefaultWifiRefresh    = 5 * time.Second

	// DefaultSpinnerFrame is the launch spinner frame period.
	DefaultSpinnerFrame = time.Second

	// LaunchSettle bounds how long the spinner waits for a launched process.
	LaunchSettle = 3 * time.Second

	// slideFPS is the frame rate of page slide animations.
	slideFPS = 60

	// SysInfoTimeout bounds the device info query of the settings page.
	SysInfoTimeout = 2 * time.Second
)

// WifiPressedOpacity is the opacity of the Wi-Fi button while pressed.
const WifiPressedOpacity = 0.3
