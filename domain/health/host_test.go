package health

import (
	"context"
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/stretchr/testify/assert"
)

func TestHostProbe_Collect(t *testing.T) {
	p := hostProbe{
		loadAvg: func(context.Context) (*load.AvgStat, error) {
			return &load.AvgStat{Load1: 0.5, Load5: 0.25}, nil
		},
		memStats: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{UsedPercent: 42}, nil
		},
		cpuCores: func() int { return 4 },
	}

	stats := p.collect(context.Background())
	assert.Equal(t, 4, stats.CPUCores)
	assert.Equal(t, 0.5, stats.Load1)
	assert.Equal(t, 0.25, stats.Load5)
	assert.Equal(t, 42.0, stats.MemoryUsedPercent)
	assert.Empty(t, stats.Errors)
}

func TestHostProbe_PartialFailure(t *testing.T) {
	p := hostProbe{
		loadAvg: func(context.Context) (*load.AvgStat, error) {
			return nil, errors.New("not implemented")
		},
		memStats: func(context.Context) (*mem.VirtualMemoryStat, error) {
			return &mem.VirtualMemoryStat{UsedPercent: 10}, nil
		},
		cpuCores: func() int { return 2 },
	}

	stats := p.collect(context.Background())
	assert.Equal(t, 10.0, stats.MemoryUsedPercent)
	assert.Zero(t, stats.Load1)
	assert.Equal(t, []string{"load: not implemented"}, stats.Errors)
}
