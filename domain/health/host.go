package health

import (
	"context"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

const hostCollectTimeout = 2 * time.Second

// HostStats is a point-in-time view of the machine the site runs on.
type HostStats struct {
	CPUCores          int     `json:"cpu_cores"`
	Load1             float64 `json:"load1"`
	Load5             float64 `json:"load5"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	// Errors lists the probes that failed; other fields are still valid.
	Errors []string `json:"errors,omitempty"`
}

// hostProbe reads host metrics; fields are swapped in tests.
type hostProbe struct {
	loadAvg  func(context.Context) (*load.AvgStat, error)
	memStats func(context.Context) (*mem.VirtualMemoryStat, error)
	cpuCores func() int
}

func newHostProbe() hostProbe {
	return hostProbe{
		loadAvg:  load.AvgWithContext,
		memStats: mem.VirtualMemoryWithContext,
		cpuCores: runtime.NumCPU,
	}
}

func (p hostProbe) collect(ctx context.Context) HostStats {
	ctx, cancel := context.WithTimeout(ctx, hostCollectTimeout)
	defer cancel()

	stats := HostStats{CPUCores: p.cpuCores()}
	if l, err := p.loadAvg(ctx); err == nil {
		stats.Load1, stats.Load5 = l.Load1, l.Load5
	} else {
		stats.Errors = append(stats.Errors, "load: "+err.Error())
	}
	if v, err := p.memStats(ctx); err == nil {
		stats.MemoryUsedPercent = v.UsedPercent
	} else {
		stats.Errors = append(stats.Errors, "memory: "+err.Error())
	}
	return stats
}
