package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplevector/vecmetrics"
	"github.com/katalvlaran/simplevector/vector"
)

// Transition is one capacity change observed while pushing.
type Transition struct {
	Push        int `yaml:"push"`
	OldCapacity int `yaml:"old_capacity"`
	NewCapacity int `yaml:"new_capacity"`
	Moved       int `yaml:"moved"`
}

// Report is the outcome of a trace run.
type Report struct {
	Transitions []Transition       `yaml:"transitions"`
	Size        int                `yaml:"size"`
	Capacity    int                `yaml:"capacity"`
	Error       string             `yaml:"error,omitempty"`
	Metrics     map[string]float64 `yaml:"metrics"`
}

// transitionRecorder turns Reallocated callbacks into Transitions, stored
// in a Vector of its own.
type transitionRecorder struct {
	push        int
	transitions *vector.Vector[Transition]
}

func (r *transitionRecorder) Reallocated(from, to, moved int) {
	_ = r.transitions.PushBack(Transition{
		Push:        r.push,
		OldCapacity: from,
		NewCapacity: to,
		Moved:       moved,
	})
}

func (r *transitionRecorder) AllocationFailed(int, error) {}

// observers fans growth events out to several observers in order.
type observers []vector.Observer

func (o observers) Reallocated(from, to, moved int) {
	for _, obs := range o {
		obs.Reallocated(from, to, moved)
	}
}

func (o observers) AllocationFailed(requested int, err error) {
	for _, obs := range o {
		obs.AllocationFailed(requested, err)
	}
}

// runTrace reserves cfg.Reserve slots, pushes cfg.Pushes integers and
// records every reallocation. An allocation failure stops the run and is
// reported in Report.Error rather than returned.
func runTrace(cfg Config, logger log.Logger) (Report, error) {
	reg := prometheus.NewRegistry()
	rec := &transitionRecorder{transitions: vector.New[Transition]()}
	opts := append(cfg.vectorOptions(),
		vector.WithObserver(observers{rec, vecmetrics.New(reg)}),
		vector.WithLogger(logger),
	)

	var report Report
	v, err := vector.NewReserved[int](vector.Reserve(cfg.Reserve), opts...)
	if err != nil {
		return report, fmt.Errorf("trace: reserve %d: %w", cfg.Reserve, err)
	}
	for i := 0; i < cfg.Pushes; i++ {
		rec.push = i
		if err := v.PushBack(i); err != nil {
			level.Warn(logger).Log("msg", "trace stopped", "push", i, "err", err)
			report.Error = err.Error()
			break
		}
	}

	report.Transitions = rec.transitions.ToSlice()
	report.Size, report.Capacity = v.Size(), v.Capacity()
	if report.Metrics, err = gatherCounters(reg); err != nil {
		return report, err
	}
	level.Info(logger).Log("msg", "trace finished", "size", report.Size, "capacity", report.Capacity, "reallocations", len(report.Transitions))

	return report, nil
}

// gatherCounters reads every counter of reg into a name → value map.
func gatherCounters(reg prometheus.Gatherer) (map[string]float64, error) {
	families, err := reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("trace: gather metrics: %w", err)
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] += m.GetCounter().GetValue()
		}
	}

	return out, nil
}

// render writes the report in the configured format.
func render(w io.Writer, format string, r Report) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Push", "Old capacity", "New capacity", "Moved"})
	for _, tr := range r.Transitions {
		table.Append([]string{
			strconv.Itoa(tr.Push),
			humanize.Comma(int64(tr.OldCapacity)),
			humanize.Comma(int64(tr.NewCapacity)),
			humanize.Comma(int64(tr.Moved)),
		})
	}
	table.Render()

	fmt.Fprintf(w, "size %s, capacity %s\n", humanize.Comma(int64(r.Size)), humanize.Comma(int64(r.Capacity)))
	if r.Error != "" {
		fmt.Fprintf(w, "stopped: %s\n", r.Error)
	}
	names := make([]string, 0, len(r.Metrics))
	for name := range r.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %s\n", name, humanize.Commaf(r.Metrics[name]))
	}

	return nil
}
