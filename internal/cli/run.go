package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/bptcheck/internal/config"
	"github.com/roach88/bptcheck/internal/document"
	"github.com/roach88/bptcheck/internal/finding"
	"github.com/roach88/bptcheck/internal/footnote"
	"github.com/roach88/bptcheck/internal/logging"
	"github.com/roach88/bptcheck/internal/report"
	"github.com/roach88/bptcheck/internal/textpart"
)

// CheckOptions holds flags shared by the checking commands.
type CheckOptions struct {
	*RootOptions
	Input  string // corpus directory
	Output string // report directory, overrides config
	Mode   string // footnote mode, overrides config
}

// suite is one check run over every document of the corpus.
type suite struct {
	// name is embedded in the report file name; empty for footnotes.
	name  string
	topic string
	check func(doc *document.Document) []finding.Finding
}

func footnoteSuite(cfg *config.Config) suite {
	mode := cfg.Mode()
	return suite{
		name:  "",
		topic: "footnotes",
		check: func(doc *document.Document) []finding.Finding {
			return footnote.Check(doc, mode)
		},
	}
}

func textpartSuite(cfg *config.Config) suite {
	return suite{
		name:  "textparts",
		topic: "textparts",
		check: func(doc *document.Document) []finding.Finding {
			return textpart.Check(doc.Path, doc.TextpartLabels(cfg.TextpartPrefix), cfg.Tags)
		},
	}
}

// ReportResult summarizes one written report.
type ReportResult struct {
	Check     string            `json:"check"`
	Path      string            `json:"report"`
	Documents int               `json:"documents"`
	Findings  []finding.Finding `json:"findings"`
}

// CheckResult is the JSON payload of a checking command.
type CheckResult struct {
	Input   string         `json:"input"`
	Reports []ReportResult `json:"reports"`
}

func addCheckFlags(cmd *cobra.Command, opts *CheckOptions) {
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "directory of documents to check (required)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "directory for report files (default from config, \".\")")
}

func addModeFlag(cmd *cobra.Command, opts *CheckOptions) {
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "footnote comparison mode (count|keys), default from config")
	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return footnote.ValidModes, cobra.ShellCompDirectiveNoFileComp
	})
}

// runChecks loads the corpus once and runs every suite built by builds over
// each document, one document at a time.
func runChecks(opts *CheckOptions, cmd *cobra.Command, builds ...func(*config.Config) suite) error {
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	if opts.Input == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return outputRunError(formatter, ErrCodeUsage, "input directory not specified: use -i <inputfolder>", nil)
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.Verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts)
	if err != nil {
		return outputRunError(formatter, ErrCodeInvalidConfig, err.Error(), nil)
	}

	files, err := document.Find(opts.Input, cfg.Pattern)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	logger.Debug("found documents", zap.String("input", opts.Input), zap.Int("count", len(files)))

	suites := make([]suite, len(builds))
	collections := make([]finding.Collection, len(builds))
	for i, build := range builds {
		suites[i] = build(cfg)
	}

	for _, path := range files {
		doc, err := document.Load(path, cfg.NotesMarker)
		if err != nil {
			return outputLoadError(formatter, err)
		}
		for i, s := range suites {
			found := s.check(doc)
			collections[i].Add(found...)
			logger.Debug("checked document",
				zap.String("check", s.topic),
				zap.String("path", path),
				zap.Int("findings", len(found)))
		}
	}

	writer := &report.Writer{Dir: cfg.OutputDir, Now: opts.now}
	result := CheckResult{Input: opts.Input}
	total := 0
	firstCode := ""
	for i, s := range suites {
		sorted := collections[i].Sorted()
		header := fmt.Sprintf("Following files in %s contain problems with %s:", opts.Input, s.topic)
		path, err := writer.Write(s.name, header, sorted)
		if err != nil {
			return outputRunError(formatter, ErrCodeWriteFailed, err.Error(), nil)
		}
		logger.Info("wrote report", zap.String("path", path), zap.Int("findings", len(sorted)))

		if len(sorted) > 0 && firstCode == "" {
			firstCode = sorted[0].Code
		}
		total += len(sorted)
		if sorted == nil {
			sorted = []finding.Finding{}
		}
		result.Reports = append(result.Reports, ReportResult{
			Check:     s.topic,
			Path:      path,
			Documents: len(files),
			Findings:  sorted,
		})
	}

	return outputCheckResult(formatter, result, total, firstCode, opts.runID())
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts *CheckOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Output != "" {
		cfg.OutputDir = opts.Output
	}
	if opts.Mode != "" {
		mode, err := footnote.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		cfg.FootnoteMode = string(mode)
	}
	return cfg, nil
}

func outputCheckResult(formatter *OutputFormatter, result CheckResult, total int, code, runID string) error {
	if formatter.Format == "json" {
		if total == 0 {
			return formatter.Success(result, runID)
		}
		if err := formatter.Failure(result, code, fmt.Sprintf("%d finding(s) reported", total), runID); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d finding(s) reported", total))
	}

	for _, r := range result.Reports {
		fmt.Fprintf(formatter.Writer, "Files checked for missing %s\n", r.Check)
		fmt.Fprintf(formatter.Writer, "  %d document(s), %d finding(s)\n", r.Documents, len(r.Findings))
		fmt.Fprintf(formatter.Writer, "  report: %s\n", r.Path)
	}
	if total > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d finding(s) reported", total))
	}
	return nil
}

// outputLoadError reports a corpus loading failure with its loader code.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *document.LoadError
	if errors.As(err, &loadErr) {
		msg := loadErr.Message
		if loadErr.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, loadErr.Err)
		}
		return outputRunError(formatter, loadErr.Code, msg, nil)
	}
	return outputRunError(formatter, ErrCodeGeneric, err.Error(), nil)
}

// outputRunError outputs a command-level error (exit code 2).
func outputRunError(formatter *OutputFormatter, code, message string, details any) error {
	_ = formatter.Error(code, message, details)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}
