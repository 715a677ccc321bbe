// internal/timing/aggregator.go
package timing

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/benchplot/internal/logging"
)

// ErrNoData is returned when no input produced a usable record, so no mean
// is defined.
var ErrNoData = errors.New("no successfully parsed inputs")

var notice = color.New(color.FgYellow)

// Averages accumulates latency sums over successfully parsed runs.
type Averages struct {
	sums  Diffs
	count int
}

// Means are the per-latency arithmetic means over all counted runs.
type Means struct {
	Sleep     float64
	Interrupt float64
	Schedule  float64
}

// Values returns the means in output order: sleep, interrupt, schedule.
func (m Means) Values() []float64 {
	return []float64{m.Sleep, m.Interrupt, m.Schedule}
}

// Add folds one run's latencies into the sums.
func (a *Averages) Add(d Diffs) {
	a.sums.Sleep += d.Sleep
	a.sums.Interrupt += d.Interrupt
	a.sums.Schedule += d.Schedule
	a.count++
}

// Count returns the number of runs added so far.
func (a *Averages) Count() int { return a.count }

// Means divides each sum by the run count. It returns ErrNoData when nothing
// has been added.
func (a *Averages) Means() (Means, error) {
	if a.count == 0 {
		return Means{}, ErrNoData
	}
	n := float64(a.count)
	return Means{
		Sleep:     float64(a.sums.Sleep) / n,
		Interrupt: float64(a.sums.Interrupt) / n,
		Schedule:  float64(a.sums.Schedule) / n,
	}, nil
}

// Options configures one aggregation pass.
type Options struct {
	// Dir is the directory the inputs are resolved against.
	Dir string
	// Inputs lists the run file names, attempted in order.
	Inputs []string
	// Out receives the progress and summary lines. Nil discards them.
	Out io.Writer
}

// Report is the result of one aggregation pass.
type Report struct {
	Results []FileResult
	Count   int
	Means   Means
}

// Failed returns the results that were excluded from the averages.
func (r Report) Failed() []FileResult {
	var failed []FileResult
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// Aggregate attempts every input in order, averages the latencies of the
// ones that parse and prints progress to opts.Out. A failing input is logged
// and skipped; it never aborts the pass. ErrNoData is returned, together with
// the partial report, when every input failed.
func Aggregate(opts Options) (Report, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var (
		avg    Averages
		report Report
	)
	for _, name := range opts.Inputs {
		fmt.Fprintf(out, "try %s\n", name)

		res := ReadFile(name, filepath.Join(opts.Dir, name))
		for i := 0; i < res.ExtraLines; i++ {
			notice.Fprintln(out, "too many lines")
		}
		report.Results = append(report.Results, res)
		if !res.OK() {
			logging.LogEvent("[AGGREGATE] skipping %s (%s): %v", res.Path, res.Reason(), res.Err)
			continue
		}

		avg.Add(res.Diffs)
		fmt.Fprintf(out, "run %d\t\t1 %d\t2 %d\t3 %d\n",
			avg.Count(), res.Diffs.Sleep, res.Diffs.Interrupt, res.Diffs.Schedule)
	}

	report.Count = avg.Count()
	means, err := avg.Means()
	if err != nil {
		return report, err
	}
	report.Means = means

	fmt.Fprintf(out, "Average \t1. %s\t2. %s\t3. %s\n",
		FormatMean(means.Sleep), FormatMean(means.Interrupt), FormatMean(means.Schedule))
	return report, nil
}

// FormatMean renders v as the shortest decimal that parses back to v, keeping
// a trailing ".0" on integral values so every mean reads as a float.
func FormatMean(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// DefaultInputs returns the run file names "1" through n.
func DefaultInputs(n int) []string {
	names := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		names = append(names, strconv.Itoa(i))
	}
	return names
}
