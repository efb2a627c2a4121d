package sysinfo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFillsSomething(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	info, err := Collect(ctx)
	if err != nil {
		t.Logf("partial collection: %v", err)
	}
	require.False(t, info.CollectedAt.IsZero())
}

func TestFormatting(t *testing.T) {
	info := Info{
		Platform:        "debian",
		PlatformVersion: "12.5",
		Uptime:          26*time.Hour + 5*time.Minute + 30*time.Second,
		MemTotal:        4 << 30,
		MemUsed:         1 << 30,
		MemUsedPercent:  25,
		Load1:           0.5,
		Load5:           0.25,
		Load15:          0.125,
	}

	assert.Equal(t, "debian 12.5", info.OS())
	assert.Equal(t, "1.0 GiB / 4.0 GiB (25%)", info.Memory())
	assert.Equal(t, "1d 2h 5m", info.UptimeString())
	assert.Equal(t, "0.50 0.25 0.12", info.LoadString())
	assert.Empty(t, info.Since())
}

func TestFormattingEmpty(t *testing.T) {
	var info Info
	assert.Empty(t, info.OS())
	assert.Empty(t, info.Memory())
	assert.Empty(t, info.UptimeString())

	assert.Equal(t, "45m", Info{Uptime: 45 * time.Minute}.UptimeString())
	assert.Equal(t, "2h 0m", Info{Uptime: 2 * time.Hour}.UptimeString())
}
