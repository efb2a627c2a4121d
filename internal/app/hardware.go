package app

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/kiosk/internal/config"
	"github.com/five82/kiosk/internal/hardware"
	"github.com/five82/kiosk/internal/status"
)

// simulatedStartLevel is where the simulated battery starts draining from.
const simulatedStartLevel = 80

// devices are the status sources the shell reads.
type devices struct {
	battery status.BatteryReader
	wifi    status.WifiProbe
	close   func() error
}

// Close releases the Wi-Fi netlink socket, if any.
func (d devices) Close() error {
	if d.close == nil {
		return nil
	}
	return d.close()
}

func openHardware(cfg config.Config, simulate bool, logger *log.Logger) devices {
	if simulate {
		logger.Info("using simulated battery and wifi")
		return devices{
			battery: hardware.NewSimulatedBattery(simulatedStartLevel),
			wifi:    &hardware.SimulatedWifi{},
		}
	}
	w := hardware.NewWifi(cfg.Status.WifiInterface, logger)
	return devices{
		battery: hardware.NewBattery(),
		wifi:    w,
		close:   w.Close,
	}
}

// shutdown stops the sampler within grace. A sampler stuck in a blocking read
// is logged and abandoned; it never fails the exit.
func shutdown(sampler *status.Sampler, grace time.Duration, logger *log.Logger) error {
	err := sampler.Stop(grace)
	if errors.Is(err, status.ErrStopTimeout) {
		logger.Error("battery sampler leaked at shutdown", "grace", grace)
	}
	return err
}
