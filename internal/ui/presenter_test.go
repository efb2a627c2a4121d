package ui

import (
	"testing"

	"github.com/five82/kiosk/internal/icons"
	"github.com/five82/kiosk/internal/status"
)

func TestBatteryPresenterSetsAllVisuals(t *testing.T) {
	bat := &fakeBattery{b: status.BatteryStatus{Percentage: 50}}
	m := newTestModel(t, Options{Battery: bat})

	btn := findButton(t, m, "Battery")
	want := icons.BatteryImage(bat.b)
	for _, s := range []buttonState{stateNormal, stateHover, statePressed} {
		v := btn.Visual(s)
		if v.Image == nil || v.Image.Name != want {
			t.Fatalf("state %d image = %v, want %s", s, v.Image, want)
		}
		if v.Opacity != 1 {
			t.Fatalf("state %d opacity = %v, want 1", s, v.Opacity)
		}
	}
}

func TestWifiPresenterDimsPressedVisual(t *testing.T) {
	wifi := &fakeWifi{st: status.WifiStatus{Connected: true, SignalStrength: -55, SSID: "home"}, ok: true}
	m := newTestModel(t, Options{Wifi: wifi})

	btn := findButton(t, m, "WiFi")
	want := icons.WifiImage(wifi.st, true)
	if got := btn.Visual(stateNormal); got.Image.Name != want || got.Opacity != 1 {
		t.Fatalf("normal visual = %s/%v, want %s/1", got.Image.Name, got.Opacity, want)
	}
	if got := btn.Visual(stateHover); got.Opacity != 1 {
		t.Fatalf("hover opacity = %v, want 1", got.Opacity)
	}
	if got := btn.Visual(statePressed); got.Image.Name != want || got.Opacity != WifiPressedOpacity {
		t.Fatalf("pressed visual = %s/%v, want %s/%v", got.Image.Name, got.Opacity, want, WifiPressedOpacity)
	}
	if !m.env.lastWifiOK || m.env.lastWifi.SSID != "home" {
		t.Fatalf("last reading not shared: %+v", m.env.lastWifi)
	}
}

func TestStatusTickUpdatesAndReschedules(t *testing.T) {
	bat := &fakeBattery{b: status.BatteryStatus{Percentage: 10}}
	m := newTestModel(t, Options{Battery: bat})

	bat.b = status.BatteryStatus{Percentage: 90, IsCharging: true}
	m, cmd := update(t, m, statusTickMsg{kind: batteryStatus, gen: m.batteryP.gen})
	if cmd == nil {
		t.Fatalf("live tick not rescheduled")
	}
	if got := findButton(t, m, "Battery").Visual(stateNormal).Image.Name; got != icons.BatteryImage(bat.b) {
		t.Fatalf("battery image = %s, want %s", got, icons.BatteryImage(bat.b))
	}
}

func TestStaleStatusTickIsDropped(t *testing.T) {
	bat := &fakeBattery{b: status.BatteryStatus{Percentage: 10}}
	m := newTestModel(t, Options{Battery: bat})
	before := findButton(t, m, "Battery").Visual(stateNormal).Image.Name

	bat.b = status.BatteryStatus{Percentage: 90}
	m, cmd := update(t, m, statusTickMsg{kind: batteryStatus, gen: m.batteryP.gen - 1})
	if cmd != nil {
		t.Fatalf("stale tick rescheduled")
	}
	if got := findButton(t, m, "Battery").Visual(stateNormal).Image.Name; got != before {
		t.Fatalf("stale tick changed image to %s", got)
	}

	// A wifi tick carrying the battery generation is not the wifi chain.
	wifi := m.wifi.(*fakeWifi)
	calls := wifi.calls
	m, _ = update(t, m, statusTickMsg{kind: wifiStatus, gen: m.wifiP.gen + 1})
	if wifi.calls != calls {
		t.Fatalf("stale wifi tick queried the probe")
	}
}

func TestStatusTickWithoutBarsStopsChain(t *testing.T) {
	m := newTestModel(t, Options{})
	m.top, m.bottom = nil, nil

	m, cmd := update(t, m, statusTickMsg{kind: wifiStatus, gen: m.wifiP.gen})
	if cmd != nil {
		t.Fatalf("tick without bars rescheduled")
	}
	if m.wifiP.running {
		t.Fatalf("wifi presenter still running")
	}
}

func TestPresenterRestartOrphansOldChain(t *testing.T) {
	p := newStatusPresenter(batteryStatus, DefaultBatteryRefresh)
	p.start()
	old := statusTickMsg{kind: batteryStatus, gen: p.gen}
	p.start()

	if p.accept(old) {
		t.Fatalf("old chain tick accepted after restart")
	}
	if !p.accept(statusTickMsg{kind: batteryStatus, gen: p.gen}) {
		t.Fatalf("live tick rejected")
	}
	p.stop()
	if p.accept(statusTickMsg{kind: batteryStatus, gen: p.gen}) {
		t.Fatalf("tick accepted after stop")
	}
}
