package chart

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mwiater/benchplot/internal/series"
)

// LabeledOptions names the per-configuration log files and where the sample
// sits on each line.
type LabeledOptions struct {
	Dir    string
	Prefix string
	// Labels are the configurations, in chart order. The file for a label is
	// Prefix+label inside Dir.
	Labels []string
	// TokenField is the index of the whitespace-separated token holding the
	// sample.
	TokenField int
	// TrimLeading and TrimTrailing characters are removed from the token
	// before parsing, e.g. 2 and 1 turn "0m1.234s" into "1.234".
	TrimLeading  int
	TrimTrailing int
}

// ReadLabeled reads one log file per label and returns one bar per label, in
// label order, holding the mean of the file's samples. A missing file, a
// malformed line or a file without samples aborts the read.
func ReadLabeled(opts LabeledOptions) (Bars, error) {
	groups := series.NewGrouped[string]()
	for _, label := range opts.Labels {
		groups.Declare(label)
		path := filepath.Join(opts.Dir, opts.Prefix+label)
		if err := readLabeledFile(path, label, opts, groups); err != nil {
			return Bars{}, err
		}
	}

	means, err := groups.Means(series.ByInsertion)
	if err != nil {
		return Bars{}, err
	}
	var bars Bars
	for _, m := range means {
		bars.Labels = append(bars.Labels, m.Key)
		bars.Values = append(bars.Values, m.Value)
	}
	return bars, nil
}

func readLabeledFile(path, label string, opts LabeledOptions, groups *series.Grouped[string]) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) <= opts.TokenField {
			return fmt.Errorf("%s:%d: got %d tokens, want at least %d", path, line, len(fields), opts.TokenField+1)
		}
		token, err := unwrap(fields[opts.TokenField], opts.TrimLeading, opts.TrimTrailing)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		groups.Add(label, v)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
