package sysstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	s := NewSampler()
	st := s.Sample()
	assert.NotZero(t, st.HeapAlloc)
	assert.GreaterOrEqual(t, st.Sys, st.HeapAlloc)
	assert.Positive(t, st.Goroutines)
}

func TestLines(t *testing.T) {
	st := Stats{HeapAlloc: 1536 * 1024, Sys: 12 << 20, CPUPercent: 12.34}
	assert.Equal(t, "Mem: 1.5 MiB / 12 MiB", st.MemLine())
	assert.Equal(t, "CPU: 12.3%", st.CPULine())

	st.CPUPercent = -1
	assert.Equal(t, "CPU: n/a", st.CPULine())

	assert.Equal(t, "Blocks: 4,500", BlocksLine(4500))
}
