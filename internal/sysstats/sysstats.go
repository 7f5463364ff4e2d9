// Package sysstats samples process memory and CPU for the debug overlay.
package sysstats

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is one sample.
type Stats struct {
	HeapAlloc  uint64
	Sys        uint64
	Goroutines int
	// CPUPercent is the process CPU share since the previous sample; -1 when unavailable.
	CPUPercent float64
	Uptime     time.Duration
}

// Sampler reads Stats for the current process.
type Sampler struct {
	start time.Time
	proc  *process.Process
	mem   runtime.MemStats
}

// NewSampler returns a sampler for this process. CPU is reported as unavailable if the process
// handle cannot be opened.
func NewSampler() *Sampler {
	s := &Sampler{start: time.Now()}
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		s.proc = p
	}
	return s
}

// Sample reads current values. It allocates; call it at a low rate.
func (s *Sampler) Sample() Stats {
	runtime.ReadMemStats(&s.mem)
	st := Stats{
		HeapAlloc:  s.mem.HeapAlloc,
		Sys:        s.mem.Sys,
		Goroutines: runtime.NumGoroutine(),
		CPUPercent: -1,
		Uptime:     time.Since(s.start),
	}
	if s.proc != nil {
		if pct, err := s.proc.Percent(0); err == nil {
			st.CPUPercent = pct
		}
	}
	return st
}

// MemLine formats heap and total reserved memory, e.g. "Mem: 1.5 MiB / 12 MiB".
func (st Stats) MemLine() string {
	return fmt.Sprintf("Mem: %s / %s", humanize.IBytes(st.HeapAlloc), humanize.IBytes(st.Sys))
}

// CPULine formats the CPU share, or "CPU: n/a".
func (st Stats) CPULine() string {
	if st.CPUPercent < 0 {
		return "CPU: n/a"
	}
	return fmt.Sprintf("CPU: %.1f%%", st.CPUPercent)
}

// BlocksLine formats a block count with thousands separators.
func BlocksLine(n int) string {
	return "Blocks: " + humanize.Comma(int64(n))
}
