// internal/timing/record.go
// Package timing reduces per-run timestamp files into latency differences and
// their averages across runs.
package timing

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// recordLines is the number of timestamp lines a run file carries.
const recordLines = 5

var (
	// ErrMissing marks an input that does not exist.
	ErrMissing = errors.New("input missing")
	// ErrUnreadable marks an input that exists but could not be opened or read.
	ErrUnreadable = errors.New("input unreadable")
	// ErrMalformed marks an input whose content is not a five-integer record.
	ErrMalformed = errors.New("malformed record")
)

// Record holds the timestamps of a single run, in file line order. The second
// line carries no value used by any latency and is not kept.
type Record struct {
	V1 int64
	V3 int64
	V4 int64
	V5 int64
}

// Diffs are the three latencies derived from a Record.
type Diffs struct {
	Sleep     int64 // v5 - v1
	Interrupt int64 // v4 - v3
	Schedule  int64 // v5 - v4
}

// Diffs computes the sleep, interrupt and scheduling latencies of the record.
func (r Record) Diffs() Diffs {
	return Diffs{
		Sleep:     r.V5 - r.V1,
		Interrupt: r.V4 - r.V3,
		Schedule:  r.V5 - r.V4,
	}
}

// ParseRecord reads a run file from r. Lines past the fifth are counted and
// returned as extra but never parsed. Fewer than five lines, or a non-integer
// on any used line, yields an error wrapping ErrMalformed.
func ParseRecord(r io.Reader) (Record, int, error) {
	var (
		rec   Record
		line  int
		extra int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line >= recordLines {
			extra++
			continue
		}
		text := scanner.Text()
		var dst *int64
		switch line {
		case 0:
			dst = &rec.V1
		case 2:
			dst = &rec.V3
		case 3:
			dst = &rec.V4
		case 4:
			dst = &rec.V5
		}
		if dst != nil {
			v, err := parseInt(text)
			if err != nil {
				return Record{}, extra, fmt.Errorf("%w: line %d: %v", ErrMalformed, line+1, err)
			}
			*dst = v
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return Record{}, extra, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if line < recordLines {
		return Record{}, extra, fmt.Errorf("%w: got %d lines, want %d", ErrMalformed, line, recordLines)
	}
	return rec, extra, nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
