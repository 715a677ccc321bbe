// internal/chart/keyed.go
package chart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mwiater/benchplot/internal/logging"
	"github.com/mwiater/benchplot/internal/series"
)

// KeyedOptions locates the key and sample inside each CSV record.
type KeyedOptions struct {
	// KeyField holds the group key wrapped in one delimiter on each side,
	// e.g. "[100]".
	KeyField int
	// ValueField holds the sample.
	ValueField int
	// ExpectedGroups is the number of groups the chart is laid out for.
	// Zero disables the check.
	ExpectedGroups int
}

// ReadKeyedFile reads a keyed CSV from path. See ReadKeyed.
func ReadKeyedFile(path string, opts KeyedOptions) (Bars, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bars{}, err
	}
	defer f.Close()

	bars, err := ReadKeyed(f, opts)
	if err != nil {
		return Bars{}, fmt.Errorf("%s: %w", path, err)
	}
	return bars, nil
}

// ReadKeyed groups the samples of a keyed CSV by their integer key and
// returns one bar per key, sorted by key, each holding the mean of its
// samples. Any malformed record aborts the read.
func ReadKeyed(r io.Reader, opts KeyedOptions) (Bars, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	need := max(opts.KeyField, opts.ValueField) + 1
	groups := series.NewGrouped[int]()
	for rec := 1; ; rec++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Bars{}, err
		}
		if len(row) < need {
			return Bars{}, fmt.Errorf("record %d: got %d fields, want at least %d", rec, len(row), need)
		}

		inner, err := unwrap(row[opts.KeyField], 1, 1)
		if err != nil {
			return Bars{}, fmt.Errorf("record %d: key: %w", rec, err)
		}
		key, err := strconv.Atoi(strings.TrimSpace(inner))
		if err != nil {
			return Bars{}, fmt.Errorf("record %d: key: %w", rec, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[opts.ValueField]), 64)
		if err != nil {
			return Bars{}, fmt.Errorf("record %d: value: %w", rec, err)
		}
		groups.Add(key, v)
	}

	means, err := groups.Means(series.ByKey)
	if err != nil {
		return Bars{}, err
	}
	if opts.ExpectedGroups > 0 && len(means) != opts.ExpectedGroups {
		logging.LogEvent("[CHART] expected %d groups, got %d", opts.ExpectedGroups, len(means))
	}

	var bars Bars
	for _, m := range means {
		bars.Labels = append(bars.Labels, strconv.Itoa(m.Key))
		bars.Values = append(bars.Values, m.Value)
	}
	return bars, nil
}

// unwrap strips lead characters from the front of s and trail from the back.
func unwrap(s string, lead, trail int) (string, error) {
	if len(s) < lead+trail {
		return "", fmt.Errorf("%q is too short to strip %d+%d characters", s, lead, trail)
	}
	return s[lead : len(s)-trail], nil
}
