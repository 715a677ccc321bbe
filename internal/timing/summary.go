package timing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// AppendMeans appends the three means to the cumulative summary file, one row
// per mean. The file is created if needed and is never truncated; rotating it
// is left to the caller.
func AppendMeans(path string, m Means) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open summary %s: %w", path, err)
	}
	defer f.Close()

	if err := lockFile(f); err != nil {
		return fmt.Errorf("lock summary %s: %w", path, err)
	}
	defer unlockFile(f)

	w := csv.NewWriter(f)
	for _, v := range m.Values() {
		if err := w.Write([]string{FormatMean(v)}); err != nil {
			return fmt.Errorf("write summary %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}

// ReadSummary reads the cumulative summary file back, grouping rows into the
// means of each past invocation, oldest first.
func ReadSummary(path string) ([]Means, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseSummary(f)
}

func parseSummary(r io.Reader) ([]Means, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1

	var values []float64
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		v, err := strconv.ParseFloat(strings.TrimSpace(row[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("summary line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("summary holds %d rows, not a multiple of 3", len(values))
	}

	runs := make([]Means, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		runs = append(runs, Means{Sleep: values[i], Interrupt: values[i+1], Schedule: values[i+2]})
	}
	return runs, nil
}
