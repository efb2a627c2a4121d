package icons

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/kiosk/internal/status"
)

func TestBattery_CriticalIffAtOrBelowFivePercent(t *testing.T) {
	for _, charging := range []bool{false, true} {
		for p := 0; p <= 100; p++ {
			got := Battery(p, charging)
			if p <= 5 {
				assert.Equal(t, CriticalBattery, got, "p=%d charging=%v", p, charging)
				continue
			}
			want := int(math.Round(float64(p) / 100 * 3))
			if want > 2 {
				want = 2
			}
			assert.Equal(t, want, got, "p=%d charging=%v", p, charging)
			assert.NotEqual(t, CriticalBattery, got, "p=%d should never reach the critical slot", p)
		}
	}
}

func TestBattery_Buckets(t *testing.T) {
	tests := []struct {
		name string
		p    int
		want int
	}{
		{"empty", 0, 3},
		{"critical edge", 5, 3},
		{"just above critical", 6, 0},
		{"low", 16, 0},
		{"rounds up to one", 17, 1},
		{"half", 50, 2},
		{"below half", 49, 1},
		{"full clamps", 100, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Battery(tt.p, false))
		})
	}
}

// The connected range only ever produces indexes 0 and 3; the middle Wi-Fi
// images are unreachable with this formula.
func TestWifi_OnlyTwoReachableStates(t *testing.T) {
	for s := -120.0; s <= 0; s += 0.5 {
		got := Wifi(status.WifiStatus{Connected: true, SignalStrength: s}, true)
		if s < -60 {
			assert.Equal(t, 0, got, "signal %.1f", s)
		} else {
			assert.Equal(t, 3, got, "signal %.1f", s)
		}
	}
}

func TestWifi_DisconnectedOrMissingIsZero(t *testing.T) {
	assert.Equal(t, 0, Wifi(status.WifiStatus{}, false))
	assert.Equal(t, 0, Wifi(status.WifiStatus{Connected: false, SignalStrength: -10}, true))
	assert.Equal(t, 0, Wifi(status.WifiStatus{Connected: true, SignalStrength: -10}, false))
}

func TestWifi_OutOfRangeSignalIsClamped(t *testing.T) {
	assert.Equal(t, 3, Wifi(status.WifiStatus{Connected: true, SignalStrength: 20}, true))
	assert.Equal(t, 0, Wifi(status.WifiStatus{Connected: true, SignalStrength: -400}, true))
}

func TestWifi_NaNSignalReadsAsWeakest(t *testing.T) {
	nan := status.WifiStatus{Connected: true, SignalStrength: math.NaN()}

	assert.Equal(t, 0, Wifi(nan, true))
	assert.NotPanics(t, func() {
		assert.Equal(t, "wifiStrength0.png", WifiImage(nan, true))
	})
}

func TestBatteryImage_SelectsTableByChargingFlag(t *testing.T) {
	assert.Equal(t, "battery_3.png", BatteryImage(status.BatteryStatus{Percentage: 90}))
	assert.Equal(t, "batteryCharging_3.png", BatteryImage(status.BatteryStatus{Percentage: 90, IsCharging: true}))
	assert.Equal(t, "battery_0.png", BatteryImage(status.BatteryStatus{Percentage: 3}))
	assert.Equal(t, "batteryCharging_0.png", BatteryImage(status.BatteryStatus{Percentage: 3, IsCharging: true}))
	assert.Equal(t, "battery_0.png", BatteryImage(status.BatteryStatus{}), "zero value shows the critical icon")
}

func TestWifiImage(t *testing.T) {
	assert.Equal(t, "wifiStrength0.png", WifiImage(status.WifiStatus{}, false))
	assert.Equal(t, "wifiStrength3.png", WifiImage(status.WifiStatus{Connected: true, SignalStrength: -40}, true))
}

func TestTablesAreCopies(t *testing.T) {
	imgs := WifiImages()
	imgs[0] = "mutated"
	assert.Equal(t, "wifiStrength0.png", WifiImages()[0])
	assert.Len(t, SpinnerImages(), 4)
	assert.Len(t, BatteryImages(true), 4)
}
