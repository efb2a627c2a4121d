package hardware

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mdlayher/wifi"

	"github.com/five82/kiosk/internal/status"
)

// wifiClient is the subset of *wifi.Client the probe uses.
type wifiClient interface {
	Interfaces() ([]*wifi.Interface, error)
	StationInfo(ifi *wifi.Interface) ([]*wifi.StationInfo, error)
	BSS(ifi *wifi.Interface) (*wifi.BSS, error)
	Close() error
}

// Wifi queries the associated access point over nl80211.
type Wifi struct {
	iface  string
	logger *log.Logger
	dial   func() (wifiClient, error)

	mu     sync.Mutex
	client wifiClient
}

// NewWifi returns a probe for the named interface; empty picks the first
// station interface. The netlink socket is opened on first use.
func NewWifi(iface string, logger *log.Logger) *Wifi {
	return &Wifi{
		iface:  iface,
		logger: logger,
		dial: func() (wifiClient, error) {
			c, err := wifi.New()
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}
}

// Query implements status.WifiProbe. The bool is false when nothing could be
// read; being disassociated is a valid reading and returns true.
func (w *Wifi) Query() (status.WifiStatus, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	st, err := w.query()
	if err != nil {
		if w.logger != nil {
			w.logger.Debug("wifi query failed", "err", err)
		}
		w.closeLocked()
		return status.WifiStatus{}, false
	}
	return st, true
}

func (w *Wifi) query() (status.WifiStatus, error) {
	if w.client == nil {
		c, err := w.dial()
		if err != nil {
			return status.WifiStatus{}, fmt.Errorf("open nl80211: %w", err)
		}
		w.client = c
	}

	ifi, err := w.station()
	if err != nil {
		return status.WifiStatus{}, err
	}
	st := status.WifiStatus{Interface: ifi.Name}

	infos, err := w.client.StationInfo(ifi)
	if err != nil || len(infos) == 0 {
		// Not associated.
		return st, nil
	}
	st.Connected = true
	st.SignalStrength = status.ClampSignal(float64(infos[0].Signal))

	if bss, err := w.client.BSS(ifi); err == nil && bss != nil {
		st.SSID = bss.SSID
	}
	return st, nil
}

func (w *Wifi) station() (*wifi.Interface, error) {
	ifaces, err := w.client.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("list interfaces: %w", err)
	}
	for _, ifi := range ifaces {
		if ifi == nil {
			continue
		}
		if w.iface != "" {
			if ifi.Name == w.iface {
				return ifi, nil
			}
			continue
		}
		if ifi.Type == wifi.InterfaceTypeStation && ifi.Name != "" {
			return ifi, nil
		}
	}
	if w.iface != "" {
		return nil, fmt.Errorf("interface %q: %w", w.iface, ErrNoWifi)
	}
	return nil, ErrNoWifi
}

// Close releases the netlink socket.
func (w *Wifi) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *Wifi) closeLocked() error {
	if w.client == nil {
		return nil
	}
	err := w.client.Close()
	w.client = nil
	return err
}

// ErrNoWifi is returned when no wireless station interface exists.
var ErrNoWifi = errors.New("no wifi station interface")
