// Package timing measures how long an operation ran using a start file.
//
// A start file is a plain-text file holding one integer Unix timestamp.
// One invocation writes it before a long-running operation; a later
// invocation reads it back, computes the elapsed duration, and deletes it.
// A missing or unparsable start file means "no timing information" rather
// than an error, because the read side runs inside tooling hooks that must
// never disturb their host.
package timing

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// DefaultThreshold is the elapsed-seconds threshold above which callers
// should notify. Elapsed equal to the threshold does not qualify.
const DefaultThreshold = 30

// DefaultOperationType labels operations that did not specify a type.
const DefaultOperationType = "Operation"

// WriteStartFile records the current Unix time at path, creating parent
// directories as needed. Unlike the read side, failures here propagate.
func WriteStartFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating start file directory: %w", err)
	}
	stamp := strconv.FormatInt(time.Now().Unix(), 10)
	if err := os.WriteFile(path, []byte(stamp), 0o600); err != nil {
		return fmt.Errorf("writing start file %s: %w", path, err)
	}
	return nil
}

// Source identifies where an elapsed duration comes from: either an
// explicit value or a start file to consume. Exactly one variant is set.
type Source struct {
	seconds  int64
	path     string
	fromFile bool
}

// Explicit returns a Source carrying a known duration in seconds.
func Explicit(seconds int64) Source {
	return Source{seconds: seconds}
}

// FromFile returns a Source that reads and consumes the start file at path.
func FromFile(path string) Source {
	return Source{path: path, fromFile: true}
}

// Elapsed resolves the source to a duration in whole seconds.
//
// For an explicit source the value is returned verbatim. For a file source
// the start file is read, parsed as a float epoch timestamp, and deleted;
// the result is now minus start, truncated. Any read or parse failure
// returns ok == false. A failed deletion is ignored; the file was already
// consumed.
func (s Source) Elapsed(now time.Time) (int64, bool) {
	if !s.fromFile {
		return s.seconds, true
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, false
	}

	start, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, false
	}

	_ = os.Remove(s.path)

	return int64(float64(now.Unix()) - start), true
}

// Exceeds reports whether elapsed crosses the notification threshold.
// The comparison is strictly greater than.
func Exceeds(elapsed, threshold int64) bool {
	return elapsed > threshold
}
