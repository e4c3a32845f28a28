package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sih-tools/psgrab/internal/config"
	"github.com/sih-tools/psgrab/internal/export"
	"github.com/sih-tools/psgrab/internal/fetch"
	"github.com/sih-tools/psgrab/internal/logging"
	"github.com/sih-tools/psgrab/internal/ps"
	"github.com/sih-tools/psgrab/internal/scrape"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagURL     string
	flagOut     string
	flagFormats []string
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "psgrab",
		Short: "Scrape Smart India Hackathon problem statements",
		Long: `A CLI tool that fetches the SIH problem statement listing, extracts
structured records, deduplicates them by problem statement ID, and exports
to CSV, JSON, and/or XLSX under a shared base filename.`,
		RunE:          runScrape,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagURL, "url", "", "Listing URL (default: the official SIH 2025 page)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output base filename, without extension")
	cmd.Flags().StringSliceVar(&flagFormats, "formats", nil, "Output formats: any of csv, json, xlsx")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Config file path")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runScrape is the main command logic: one linear pass over the listing.
func runScrape(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(&cfg)

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	formats, err := export.ParseFormats(cfg.Output.Formats)
	if err != nil {
		return err
	}

	client := fetch.New(cfg.FetchOptions())

	logger.Info("Fetching listing", zap.String("url", cfg.URL))
	body, err := client.Fetch(cmd.Context(), cfg.URL)
	if err != nil {
		return fmt.Errorf("fetching listing: %w", err)
	}

	records, err := scrape.Parse(strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("extracting problem statements: %w", err)
	}

	unique := ps.Dedupe(records)
	logger.Info("Extracted problem statements",
		zap.Int("records", len(records)),
		zap.Int("unique", len(unique)))

	written := 0
	for _, res := range export.Write(unique, cfg.Output.Base, formats) {
		if res.Err != nil {
			logger.Error("Export failed",
				zap.String("format", string(res.Format)),
				zap.Error(res.Err))
			continue
		}
		written++
		logger.Info("Wrote export",
			zap.String("format", string(res.Format)),
			zap.String("path", res.Path))
	}

	if written == 0 {
		return fmt.Errorf("all exports failed")
	}
	return nil
}

// applyFlagOverrides lets explicit flags win over file/env configuration.
func applyFlagOverrides(cfg *config.Config) {
	if flagURL != "" {
		cfg.URL = flagURL
	}
	if flagOut != "" {
		cfg.Output.Base = flagOut
	}
	if len(flagFormats) > 0 {
		cfg.Output.Formats = flagFormats
	}
	if flagVerbose {
		cfg.Logging.Development = true
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
