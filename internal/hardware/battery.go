package hardware

import (
	"errors"
	"fmt"
	"math"

	"github.com/distatus/battery"

	"github.com/five82/kiosk/internal/status"
)

// ErrNoBattery is returned when the host reports no usable battery.
var ErrNoBattery = errors.New("no battery found")

// Battery samples all system batteries and reports them as one pack.
type Battery struct {
	getAll func() ([]*battery.Battery, error)
}

// NewBattery returns a reader backed by the OS battery interface.
func NewBattery() *Battery {
	return &Battery{getAll: battery.GetAll}
}

// Sample implements status.BatteryReader. Capacity is summed across packs so a
// laptop with two batteries reports the combined charge. Any charging pack
// marks the whole as charging.
func (b *Battery) Sample() (status.BatteryStatus, error) {
	packs, err := b.getAll()
	var perPack battery.Errors
	if err != nil && !errors.As(err, &perPack) {
		return status.BatteryStatus{}, fmt.Errorf("read batteries: %w", err)
	}

	var current, full float64
	charging := false
	usable := 0
	for i, p := range packs {
		if p == nil || !packUsable(perPack, i) {
			continue
		}
		if p.Full <= 0 {
			continue
		}
		usable++
		current += p.Current
		full += p.Full
		if p.State.Raw == battery.Charging {
			charging = true
		}
	}
	if usable == 0 {
		return status.BatteryStatus{}, ErrNoBattery
	}

	return status.BatteryStatus{
		Percentage: status.ClampPercentage(int(math.Round(current / full * 100))),
		IsCharging: charging,
	}, nil
}

// packUsable reports whether the i-th pack has readable charge levels. A
// partial error only disqualifies the pack when it covers Current or Full.
func packUsable(errs battery.Errors, i int) bool {
	if i >= len(errs) || errs[i] == nil {
		return true
	}
	var partial battery.ErrPartial
	if errors.As(errs[i], &partial) {
		return partial.Current == nil && partial.Full == nil
	}
	return false
}
