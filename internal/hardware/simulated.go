package hardware

import (
	"sync"

	"github.com/five82/kiosk/internal/status"
)

// SimulatedBattery drains one percent per sample down to 3%, then charges back
// to full, so every battery icon shows up within a few minutes.
type SimulatedBattery struct {
	mu       sync.Mutex
	level    int
	charging bool
}

// NewSimulatedBattery starts at the given level, discharging.
func NewSimulatedBattery(level int) *SimulatedBattery {
	return &SimulatedBattery{level: status.ClampPercentage(level)}
}

// Sample implements status.BatteryReader.
func (s *SimulatedBattery) Sample() (status.BatteryStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := status.BatteryStatus{Percentage: s.level, IsCharging: s.charging}
	switch {
	case s.charging && s.level >= 100:
		s.charging = false
		s.level--
	case s.charging:
		s.level += 4
	case s.level <= 3:
		s.charging = true
		s.level++
	default:
		s.level--
	}
	s.level = status.ClampPercentage(s.level)
	return out, nil
}

// SimulatedWifi sweeps the signal between -90 and -30 dBm and drops the link
// for one query per sweep.
type SimulatedWifi struct {
	mu    sync.Mutex
	step  int
	SSID  string
	Iface string
}

var simulatedSignals = []float64{-30, -45, -60, -75, -90, -75, -60, -45}

// Query implements status.WifiProbe.
func (s *SimulatedWifi) Query() (status.WifiStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.step % (len(simulatedSignals) + 1)
	s.step++

	iface := s.Iface
	if iface == "" {
		iface = "wlan0"
	}
	if i == len(simulatedSignals) {
		return status.WifiStatus{Interface: iface}, true
	}
	ssid := s.SSID
	if ssid == "" {
		ssid = "kiosk-sim"
	}
	return status.WifiStatus{
		Connected:      true,
		SignalStrength: simulatedSignals[i],
		SSID:           ssid,
		Interface:      iface,
	}, true
}
