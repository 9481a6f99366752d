// Package config loads bptcheck settings from an optional YAML file.
//
// Values absent from the file keep their defaults. The merged result is
// validated against the embedded CUE schema in schema.cue.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/bptcheck/internal/document"
	"github.com/roach88/bptcheck/internal/footnote"
	"github.com/roach88/bptcheck/internal/textpart"
)

//go:embed schema.cue
var schemaCUE string

// Config holds the settings shared by all commands.
type Config struct {
	// Tags is the set of textpart type tags, one byte each.
	Tags string `yaml:"tags" json:"tags"`
	// TextpartPrefix is the literal line prefix of a textpart header.
	TextpartPrefix string `yaml:"textpart_prefix" json:"textpart_prefix"`
	// NotesMarker separates the document body from its footnote definitions.
	NotesMarker string `yaml:"notes_marker" json:"notes_marker"`
	// Pattern selects documents inside the input directory.
	Pattern string `yaml:"pattern" json:"pattern"`
	// OutputDir receives report files.
	OutputDir string `yaml:"output_dir" json:"output_dir"`
	// FootnoteMode is "count" or "keys".
	FootnoteMode string `yaml:"footnote_mode" json:"footnote_mode"`
}

// Default returns the settings for BPT markdown.
func Default() Config {
	return Config{
		Tags:           textpart.DefaultTags,
		TextpartPrefix: document.DefaultTextpartPrefix,
		NotesMarker:    document.DefaultNotesMarker,
		Pattern:        document.DefaultPattern,
		OutputDir:      ".",
		FootnoteMode:   string(footnote.ModeCount),
	}
}

// Load reads the YAML file at path over the defaults and validates the
// result. An empty path returns the validated defaults.
// Unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decode(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate checks c against the CUE schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	value := def.Unify(ctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Mode returns the footnote comparison mode.
func (c *Config) Mode() footnote.Mode {
	return footnote.Mode(c.FootnoteMode)
}
