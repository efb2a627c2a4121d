// Package sysinfo collects the device facts shown on the settings page.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/errgroup"
)

// Info is one snapshot of host facts. Fields a sub-query could not fill stay
// zero.
type Info struct {
	Hostname        string
	Platform        string
	PlatformVersion string
	KernelVersion   string
	Uptime          time.Duration

	MemTotal       uint64
	MemUsed        uint64
	MemUsedPercent float64

	Load1  float64
	Load5  float64
	Load15 float64

	CollectedAt time.Time
}

// Collect queries host, memory and load in parallel. Partial failures still
// return what was gathered along with a joined error.
func Collect(ctx context.Context) (Info, error) {
	info := Info{CollectedAt: time.Now()}

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(what string, err error) {
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s: %w", what, err))
		mu.Unlock()
	}

	var g errgroup.Group
	g.Go(func() error {
		h, err := host.InfoWithContext(ctx)
		if err != nil {
			fail("host", err)
			return nil
		}
		mu.Lock()
		info.Hostname = h.Hostname
		info.Platform = h.Platform
		info.PlatformVersion = h.PlatformVersion
		info.KernelVersion = h.KernelVersion
		info.Uptime = time.Duration(h.Uptime) * time.Second
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		vm, err := mem.VirtualMemoryWithContext(ctx)
		if err != nil {
			fail("memory", err)
			return nil
		}
		mu.Lock()
		info.MemTotal = vm.Total
		info.MemUsed = vm.Used
		info.MemUsedPercent = vm.UsedPercent
		mu.Unlock()
		return nil
	})
	g.Go(func() error {
		avg, err := load.AvgWithContext(ctx)
		if err != nil {
			fail("load", err)
			return nil
		}
		mu.Lock()
		info.Load1, info.Load5, info.Load15 = avg.Load1, avg.Load5, avg.Load15
		mu.Unlock()
		return nil
	})
	_ = g.Wait()

	if len(errs) > 0 {
		return info, fmt.Errorf("sysinfo: %w", errors.Join(errs...))
	}
	return info, nil
}

// OS returns the platform and its version, e.g. "debian 12.5".
func (i Info) OS() string {
	return strings.TrimSpace(i.Platform + " " + i.PlatformVersion)
}

// Memory formats used/total memory, e.g. "1.2 GiB / 3.8 GiB (31%)".
func (i Info) Memory() string {
	if i.MemTotal == 0 {
		return ""
	}
	return fmt.Sprintf("%s / %s (%.0f%%)", humanize.IBytes(i.MemUsed), humanize.IBytes(i.MemTotal), i.MemUsedPercent)
}

// UptimeString formats the uptime in days, hours and minutes.
func (i Info) UptimeString() string {
	if i.Uptime <= 0 {
		return ""
	}
	d := i.Uptime.Truncate(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// LoadString formats the load averages.
func (i Info) LoadString() string {
	return fmt.Sprintf("%.2f %.2f %.2f", i.Load1, i.Load5, i.Load15)
}

// Since reports how long ago the info was collected, e.g. "3 seconds ago".
func (i Info) Since() string {
	if i.CollectedAt.IsZero() {
		return ""
	}
	return humanize.Time(i.CollectedAt)
}
