package timing

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileResult is the outcome of reading one run file. Err is nil on success
// and otherwise wraps one of ErrMissing, ErrUnreadable or ErrMalformed.
type FileResult struct {
	Name       string
	Path       string
	Record     Record
	Diffs      Diffs
	ExtraLines int
	Err        error
}

// OK reports whether the file produced a usable record.
func (r FileResult) OK() bool { return r.Err == nil }

// Reason returns a short classification of the failure, or "ok".
func (r FileResult) Reason() string {
	switch {
	case r.Err == nil:
		return "ok"
	case errors.Is(r.Err, ErrMissing):
		return "missing"
	case errors.Is(r.Err, ErrMalformed):
		return "malformed"
	default:
		return "unreadable"
	}
}

// ReadFile opens path and parses it as a run record. The handle is closed
// before returning.
func ReadFile(name, path string) FileResult {
	res := FileResult{Name: name, Path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Err = fmt.Errorf("%w: %v", ErrMissing, err)
		} else {
			res.Err = fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
		return res
	}
	defer f.Close()

	rec, extra, err := ParseRecord(f)
	res.ExtraLines = extra
	if err != nil {
		res.Err = err
		return res
	}
	res.Record = rec
	res.Diffs = rec.Diffs()
	return res
}
