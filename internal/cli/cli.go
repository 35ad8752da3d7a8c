package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/euromillones/internal/draw"
	"github.com/pfrederiksen/euromillones/internal/logger"
	"github.com/pfrederiksen/euromillones/internal/report"
	"github.com/pfrederiksen/euromillones/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// NoResultsMessage is printed when a run ends without draws.
const NoResultsMessage = "No se encontraron resultados."

type options struct {
	url      string
	output   string
	format   string
	noOpen   bool
	verbose  bool
	logLevel string
}

// drawSource yields the draws of a results page
type drawSource interface {
	FetchDraws(ctx context.Context) ([]*draw.Draw, error)
}

// runner holds the collaborators of a single run
type runner struct {
	opts   options
	source drawSource
	open   func(path string) error
	stdout io.Writer
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "euromillones",
		Short: "Generate a EuroMillones results and frequency report",
		Long: `Fetches previous EuroMillones draws, ranks the most frequent numbers and
stars per position and writes an HTML report with an interactive cumulative
frequency chart.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := configureLogging(opts, cmd.ErrOrStderr()); err != nil {
				return err
			}
			r := &runner{
				opts:   opts,
				source: scraper.New(opts.url),
				open:   openBrowser,
				stdout: cmd.OutOrStdout(),
			}
			return r.run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", scraper.ResultsURL, "Results page to fetch")
	cmd.Flags().StringVar(&opts.output, "output", report.DefaultFilename, "HTML report path")
	cmd.Flags().StringVar(&opts.format, "format", string(FormatHTML), "Output format: html, text or json")
	cmd.Flags().BoolVar(&opts.noOpen, "no-open", false, "Do not open the report in the browser")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	return cmd
}

// configureLogging points the default logger at w with the requested level
func configureLogging(opts options, w io.Writer) error {
	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.verbose && level != logger.LevelDebug {
		level = logger.LevelInfo
	}
	logger.SetDefault(logger.New(level, w))
	return nil
}

// run executes fetch, extract, rank, render in one pass
func (r *runner) run(ctx context.Context) error {
	format := OutputFormat(strings.ToLower(r.opts.format))
	if !format.valid() {
		return fmt.Errorf("invalid format: %s (must be 'html', 'text' or 'json')", r.opts.format)
	}

	logger.Info("fetching results", logger.Fields{"url": r.opts.url})

	draws, err := r.source.FetchDraws(ctx)
	if err != nil {
		msg := "fetching draws failed"
		if errors.Is(err, scraper.ErrSectionNotFound) {
			msg = "previous draws section not found"
		}
		logger.Error(msg, logger.Fields{"url": r.opts.url}, err)
	}

	if len(draws) == 0 {
		fmt.Fprintln(r.stdout, NoResultsMessage)
		return nil
	}

	logger.Info("draws extracted", logger.Fields{"count": len(draws)})

	data, err := report.Build(draws, r.opts.url)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	switch format {
	case FormatText, FormatJSON:
		if err := WriteOutput(r.stdout, newOutputResult(data), format); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	default:
		if err := r.writeReport(data); err != nil {
			return err
		}
	}

	if r.opts.verbose {
		logger.Info("run metrics", logger.DefaultMetrics().Fields())
	}
	return nil
}

// writeReport saves the HTML report and opens it unless disabled
func (r *runner) writeReport(data *report.Data) error {
	if err := report.WriteFile(r.opts.output, data); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(r.stdout, "Archivo HTML generado: %s\n", r.opts.output)

	if r.opts.noOpen {
		return nil
	}

	path, err := filepath.Abs(r.opts.output)
	if err != nil {
		path = r.opts.output
	}
	if err := r.open(path); err != nil {
		// The report is on disk, failing to launch a browser is not fatal
		logger.Warn("opening browser failed", logger.Fields{"path": path}, err)
	}
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
