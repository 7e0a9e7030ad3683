// Package metrics records menu dispatches as Prometheus metrics through domain.Hooks.
package metrics

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/aretw0/promptmenu/pkg/domain"
)

const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeError           = "error"
)

// Collector holds the dispatch metrics.
type Collector struct {
	dispatches *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "promptmenu_dispatch_total",
				Help: "Total number of command lines dispatched, by command path and outcome",
			},
			[]string{"path", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "promptmenu_dispatch_duration_seconds",
				Help: "Duration of command dispatches, including the operation",
			},
			[]string{"path"},
		),
	}
	for _, m := range []prometheus.Collector{c.dispatches, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one dispatch event.
func (c *Collector) Observe(e *domain.DispatchEvent) {
	path := strings.Join(e.Path, " ")
	c.dispatches.WithLabelValues(path, Outcome(e.Err)).Inc()
	c.duration.WithLabelValues(path).Observe(e.Duration.Seconds())
}

// Counter returns the dispatch counter for a path and outcome.
func (c *Collector) Counter(path, outcome string) (prometheus.Counter, error) {
	return c.dispatches.GetMetricWithLabelValues(path, outcome)
}

// Hooks returns menu hooks feeding this collector.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{OnDispatch: c.Observe}
}

// Outcome classifies a dispatch error for the outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrInvalidArgument):
		return OutcomeInvalidArgument
	default:
		return OutcomeError
	}
}

// WriteText writes every metric family gathered from g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
