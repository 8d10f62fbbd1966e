// Package observability collects process-level diagnostics for the slow
// initialization watchdog.
package observability

import (
	"github.com/shirou/gopsutil/process"
)

// ProcessStats retrieves technical metrics (Memory, CPU, and OS Status) for
// the given pid as structured log attributes. Collection failures degrade to
// an error attribute so the watchdog log line is never lost.
func ProcessStats(pid int32) []any {
	p, err := process.NewProcess(pid)
	if err != nil {
		return []any{"pid", pid, "stats_err", err.Error()}
	}

	attrs := []any{"pid", pid}

	if memInfo, err := p.MemoryInfo(); err == nil {
		attrs = append(attrs, "ram_bytes", memInfo.RSS)
	}
	if cpuPercent, err := p.CPUPercent(); err == nil {
		attrs = append(attrs, "cpu_percent", cpuPercent)
	}
	if status, err := p.Status(); err == nil {
		attrs = append(attrs, "pid_status", status)
	}
	return attrs
}
