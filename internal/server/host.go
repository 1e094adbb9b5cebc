package server

import (
	"context"
	"log"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostStats is the machine panel on the admin dashboard.
type HostStats struct {
	Hostname       string        `json:"hostname"`
	Uptime         time.Duration `json:"uptime"`
	CPUPercent     float64       `json:"cpu_percent"`
	Load1          float64       `json:"load1"`
	Load5          float64       `json:"load5"`
	Load15         float64       `json:"load15"`
	MemUsedPercent float64       `json:"mem_used_percent"`
	MemTotal       uint64        `json:"mem_total"`
	Goroutines     int           `json:"goroutines"`
}

// hostStats samples the machine. Readings that fail are logged and left
// zero; some are unsupported on some platforms.
func hostStats(ctx context.Context) HostStats {
	hs := HostStats{Goroutines: runtime.NumGoroutine()}

	if info, err := host.InfoWithContext(ctx); err != nil {
		log.Printf("[admin] host info: %v", err)
	} else {
		hs.Hostname = info.Hostname
		hs.Uptime = time.Duration(info.Uptime) * time.Second
	}
	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		log.Printf("[admin] cpu: %v", err)
	} else if len(pct) > 0 {
		hs.CPUPercent = pct[0]
	}
	if avg, err := load.AvgWithContext(ctx); err != nil {
		log.Printf("[admin] load: %v", err)
	} else {
		hs.Load1, hs.Load5, hs.Load15 = avg.Load1, avg.Load5, avg.Load15
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		log.Printf("[admin] memory: %v", err)
	} else {
		hs.MemUsedPercent = vm.UsedPercent
		hs.MemTotal = vm.Total
	}
	return hs
}
