package status

import "math"

// BatteryStatus is one battery sample. The zero value (0%, not charging) is
// what readers see before the first sample completes.
type BatteryStatus struct {
	Percentage int
	IsCharging bool
}

// WifiStatus describes the access point the device is associated with.
// SignalStrength is only meaningful when Connected is true.
type WifiStatus struct {
	Connected      bool
	SignalStrength float64 // dBm, clamped to [-120, 0]
	SSID           string
	Interface      string
}

const (
	minSignal = -120.0
	maxSignal = 0.0
)

// BatteryReader performs one blocking battery query. It is only called from
// the Sampler goroutine.
type BatteryReader interface {
	Sample() (BatteryStatus, error)
}

// WifiProbe returns the current association, or false when no reading is
// available. It is called synchronously on every Wi-Fi presenter tick, so
// implementations must be fast.
type WifiProbe interface {
	Query() (WifiStatus, bool)
}

// ClampPercentage bounds a raw charge value to [0, 100].
func ClampPercentage(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ClampSignal bounds a raw signal reading to the dBm range the icon mapper
// expects. NaN reads as the weakest signal.
func ClampSignal(dbm float64) float64 {
	if math.IsNaN(dbm) || dbm < minSignal {
		return minSignal
	}
	if dbm > maxSignal {
		return maxSignal
	}
	return dbm
}
