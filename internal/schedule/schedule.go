// Package schedule reads crontab-like schedule files that map times of
// day to program names. One line per rule:
//
//	# min hr dom mon dow	program
//	0   18  *   *   1-5	slow_rainbow
//	0   22  *   *   *	lights_off
//
// Day of week runs 0-6 with 0 = Sunday. Fields accept '*', single
// values, ranges (a-b) and comma lists.
package schedule

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one parsed schedule line.
type Entry struct {
	Min, Hour, Dom, Mon, Dow field
	Program                  string
}

// Matches reports whether the entry fires at t's minute.
func (e Entry) Matches(t time.Time) bool {
	return e.Min.matches(t.Minute()) &&
		e.Hour.matches(t.Hour()) &&
		e.Dom.matches(t.Day()) &&
		e.Mon.matches(int(t.Month())) &&
		e.Dow.matches(int(t.Weekday()))
}

type field struct {
	any    bool
	values map[int]bool
}

func (f field) matches(v int) bool {
	return f.any || f.values[v]
}

func parseField(s string, lo, hi int) (field, error) {
	if s == "*" {
		return field{any: true}, nil
	}
	f := field{values: map[int]bool{}}
	for _, part := range strings.Split(s, ",") {
		a, b, found := strings.Cut(part, "-")
		from, err := strconv.Atoi(a)
		if err != nil {
			return field{}, fmt.Errorf("bad value %q", part)
		}
		to := from
		if found {
			to, err = strconv.Atoi(b)
			if err != nil {
				return field{}, fmt.Errorf("bad range %q", part)
			}
		}
		if from > to || from < lo || to > hi {
			return field{}, fmt.Errorf("value %q outside %d-%d", part, lo, hi)
		}
		for v := from; v <= to; v++ {
			f.values[v] = true
		}
	}
	return f, nil
}

// Parse reads schedule lines from r. Blank lines and '#' comments are
// skipped; any malformed line is an error naming its position.
func Parse(r io.Reader, name string) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	for lineNum := 1; sc.Scan(); lineNum++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 6 {
			return nil, fmt.Errorf("%s:%d: want 6 fields, have %d", name, lineNum, len(f))
		}
		var (
			e   Entry
			err error
		)
		for i, spec := range []struct {
			dst    *field
			lo, hi int
		}{
			{&e.Min, 0, 59},
			{&e.Hour, 0, 23},
			{&e.Dom, 1, 31},
			{&e.Mon, 1, 12},
			{&e.Dow, 0, 6},
		} {
			*spec.dst, err = parseField(f[i], spec.lo, spec.hi)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: field %d: %w", name, lineNum, i+1, err)
			}
		}
		e.Program = f[5]
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return entries, nil
}

// Schedule is the merged rule set from a schedule directory.
type Schedule struct {
	entries []Entry
}

func New(entries []Entry) *Schedule {
	return &Schedule{entries: entries}
}

// Load parses every regular file in dir. Order is by file name, so a
// later file's rules win ties within one minute.
func Load(dir string) (*Schedule, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, name := range names {
		info, err := os.Stat(name)
		if err != nil || info.IsDir() {
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		parsed, err := Parse(f, filepath.Base(name))
		f.Close()
		if err != nil {
			return nil, err
		}
		entries = append(entries, parsed...)
	}
	return New(entries), nil
}

func (s *Schedule) Len() int {
	return len(s.entries)
}

// At returns the program scheduled for t's minute. When several rules
// fire in the same minute the last one wins.
func (s *Schedule) At(t time.Time) (string, bool) {
	program := ""
	for _, e := range s.entries {
		if e.Matches(t) {
			program = e.Program
		}
	}
	return program, program != ""
}
