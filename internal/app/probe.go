package app

import (
	"context"
	"fmt"
	"io"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/icons"
	"github.com/five82/kiosk/internal/logging"
	"github.com/five82/kiosk/internal/sysinfo"
)

// Probe reads every status source once and prints the readings. It is the
// non-interactive way to check a device before starting the launcher.
func Probe(ctx context.Context, opts Options, w io.Writer) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	hw := openHardware(cfg, opts.Simulate, logging.Discard())
	defer hw.Close()

	fmt.Fprintf(w, "config     %s\n", orNone(cfg.Path))
	fmt.Fprintf(w, "assets     %s\n", cfg.AssetRoot)

	if b, err := hw.battery.Sample(); err != nil {
		fmt.Fprintf(w, "battery    error: %v\n", err)
	} else {
		state := "discharging"
		if b.IsCharging {
			state = "charging"
		}
		fmt.Fprintf(w, "battery    %d%% %s (state %d, %s)\n", b.Percentage, state, icons.Battery(b.Percentage, b.IsCharging), icons.BatteryImage(b))
	}

	st, ok := hw.wifi.Query()
	mapped := fmt.Sprintf("state %d, %s", icons.Wifi(st, ok), icons.WifiImage(st, ok))
	switch {
	case !ok:
		fmt.Fprintf(w, "wifi       no reading (%s)\n", mapped)
	case !st.Connected:
		fmt.Fprintf(w, "wifi       %s disconnected (%s)\n", st.Interface, mapped)
	default:
		fmt.Fprintf(w, "wifi       %s %q %.0f dBm (%s)\n", st.Interface, st.SSID, st.SignalStrength, mapped)
	}

	info, err := sysinfo.Collect(ctx)
	fmt.Fprintf(w, "host       %s\n", orNone(info.Hostname))
	fmt.Fprintf(w, "system     %s\n", orNone(info.OS()))
	fmt.Fprintf(w, "uptime     %s\n", orNone(info.UptimeString()))
	fmt.Fprintf(w, "memory     %s\n", orNone(info.Memory()))
	fmt.Fprintf(w, "load       %s\n", orNone(info.LoadString()))
	if err != nil {
		fmt.Fprintf(w, "sysinfo    partial: %v\n", err)
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
