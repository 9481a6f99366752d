// Package report writes the findings of a run to a timestamped text file.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/roach88/bptcheck/internal/finding"
)

// TimestampLayout is the time layout embedded in report file names.
const TimestampLayout = "2006-01-02T15-04-05"

// Writer writes report files into Dir.
type Writer struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string
	// Now supplies the report timestamp. Nil means time.Now.
	Now func() time.Time
}

// FileName returns the report file name for name at t:
// "Output_<name>_<timestamp>.txt", or "Output_<timestamp>.txt" when name
// is empty.
func FileName(name string, t time.Time) string {
	stamp := t.Format(TimestampLayout)
	if name == "" {
		return "Output_" + stamp + ".txt"
	}
	return "Output_" + name + "_" + stamp + ".txt"
}

// Render returns the report body: the header line followed by one line per
// finding, sorted by document and then by line text.
func Render(header string, findings []finding.Finding) []byte {
	sorted := make([]finding.Finding, len(findings))
	copy(sorted, findings)
	finding.Sort(sorted)

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')
	for _, f := range sorted {
		buf.WriteString(f.String())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Write renders the report and stores it under Dir, returning its path.
// The file is written to a temporary name in Dir and renamed into place.
func (w *Writer) Write(name, header string, findings []finding.Finding) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	dest := filepath.Join(dir, FileName(name, now()))
	if err := writeAtomic(dest, Render(header, findings)); err != nil {
		return "", fmt.Errorf("writing report %s: %w", dest, err)
	}
	return dest, nil
}

func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".tmp-report-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
