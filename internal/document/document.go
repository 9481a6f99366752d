// Package document loads corpus documents and extracts the raw text spans
// the checkers work on.
package document

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Defaults for BPT markdown.
const (
	DefaultPattern        = "*.md"
	DefaultNotesMarker    = "### Notes"
	DefaultTextpartPrefix = "### textpart "
)

// Error codes for corpus loading.
const (
	ErrCodeScanError  = "E002" // Directory scan error
	ErrCodeNoFiles    = "E003" // No documents matched
	ErrCodeReadFailed = "E004" // Document read error
	ErrCodeNotFound   = "E005" // Path not found
)

// LoadError represents an error that occurred while locating or reading
// documents.
type LoadError struct {
	Code    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Document is one loaded corpus file.
type Document struct {
	// Path identifies the document in findings.
	Path string
	// Content is the text before the notes marker.
	Content string
	// Notes is the text after the notes marker.
	Notes string
	// Lines is the whole text split into lines, without line terminators.
	Lines []string
}

// Find returns the files directly inside dir whose base name matches
// pattern, sorted. Subdirectories are not searched.
func Find(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("input directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "error accessing input directory", Err: err}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("invalid pattern %q", pattern), Err: err}
	}

	files := matches[:0]
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeScanError, Message: "error scanning directory", Err: err}
		}
		if !fi.IsDir() {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no files matching %s found in %s", pattern, dir)}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads the document at path and splits it on the first occurrence of
// notesMarker. Without a marker both Content and Notes hold the whole text.
// The text is normalized to Unicode NFC.
func Load(path, notesMarker string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s", path), Err: err}
	}
	return Parse(path, norm.NFC.String(string(raw)), notesMarker), nil
}

// Parse builds a Document from already loaded text.
func Parse(path, text, notesMarker string) *Document {
	doc := &Document{Path: path, Content: text, Notes: text}
	if notesMarker != "" {
		if before, after, found := strings.Cut(text, notesMarker); found {
			doc.Content = before
			doc.Notes = after
		}
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		doc.Lines = append(doc.Lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return doc
}

// TextpartLabels returns the label of every line that starts with prefix,
// in document order. The label is the first word after the prefix, cut at
// the first colon; a header with no word yields an empty label.
func (d *Document) TextpartLabels(prefix string) []string {
	var labels []string
	for _, line := range d.Lines {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		head, _, _ := strings.Cut(line, ":")
		fields := strings.Fields(strings.TrimPrefix(head, prefix))
		if len(fields) == 0 {
			labels = append(labels, "")
			continue
		}
		labels = append(labels, fields[0])
	}
	return labels
}
