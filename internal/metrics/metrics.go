package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"voxel-sandbox/internal/editor"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Edit outcomes as reported in the outcome label.
const (
	OutcomeOK         = "ok"
	OutcomeNoHit      = "no_hit"
	OutcomeOutOfRange = "out_of_range"
	OutcomeStale      = "stale"
	OutcomeInvalid    = "invalid_normal"
	OutcomeOccupied   = "occupied"
	OutcomeError      = "error"
)

// Recorder counts block edits and tracks the block population. Each Recorder owns its own
// registry so several can coexist (e.g. in tests).
type Recorder struct {
	registry *prometheus.Registry
	edits    *prometheus.CounterVec
	blocks   prometheus.Gauge
}

// NewRecorder creates and registers the sandbox collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		edits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sandbox",
			Name:      "block_edits_total",
			Help:      "Block edit attempts by operation and outcome.",
		}, []string{"op", "outcome"}),
		blocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sandbox",
			Name:      "blocks",
			Help:      "Blocks currently in the world.",
		}),
	}
	r.registry.MustRegister(r.edits, r.blocks)
	return r
}

// ObserveEdit counts one edit attempt. err is the editor result; nil means success.
func (r *Recorder) ObserveEdit(op string, err error) {
	r.edits.WithLabelValues(op, Outcome(err)).Inc()
}

// SetBlocks records the current block count.
func (r *Recorder) SetBlocks(n int) {
	r.blocks.Set(float64(n))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Outcome maps an editor error to its label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, editor.ErrNoHit):
		return OutcomeNoHit
	case errors.Is(err, editor.ErrOutOfRange):
		return OutcomeOutOfRange
	case errors.Is(err, editor.ErrStaleHandle):
		return OutcomeStale
	case errors.Is(err, editor.ErrInvalidNormal):
		return OutcomeInvalid
	case errors.Is(err, editor.ErrOccupied):
		return OutcomeOccupied
	}
	return OutcomeError
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (r *Recorder) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
