// Command render prints a cost estimate report without running the analyzer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"inspection_estimator/internal/bootstrap"
	"inspection_estimator/internal/config"
	"inspection_estimator/internal/domain/entities"
	"inspection_estimator/internal/domain/report"
	"inspection_estimator/internal/infrastructure/llm"
	"inspection_estimator/internal/infrastructure/logging"
	"inspection_estimator/internal/usecase"
	"inspection_estimator/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var errSourceRequired = errors.New("exactly one of --record-id or --estimate is required")

type renderOptions struct {
	recordID     string
	estimatePath string
	firstName    string
	lastName     string
	address      string
	preparedBy   string
	date         string
	output       string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a cost estimate report",
		Long: `Render rebuilds the plaintext report from a stored record (--record-id) or
from an estimate JSON file in the analyzer's output shape (--estimate).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return run(cmd.Context(), opts, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.recordID, "record-id", "", "stored record id to regenerate")
	f.StringVar(&opts.estimatePath, "estimate", "", "path to an estimate JSON file")
	f.StringVar(&opts.firstName, "first-name", "", "customer first name (with --estimate)")
	f.StringVar(&opts.lastName, "last-name", "", "customer last name (with --estimate)")
	f.StringVar(&opts.address, "address", "", "property address (with --estimate)")
	f.StringVar(&opts.preparedBy, "prepared-by", "", "override REPORT_PREPARED_BY")
	f.StringVar(&opts.date, "date", "", "report date as YYYY-MM-DD (default today)")
	f.StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func run(ctx context.Context, opts renderOptions, out io.Writer) error {
	hasRecord := strings.TrimSpace(opts.recordID) != ""
	hasEstimate := strings.TrimSpace(opts.estimatePath) != ""
	if hasRecord == hasEstimate {
		return errSourceRequired
	}

	now := time.Now().UTC()
	if opts.date != "" {
		d, err := time.Parse(dateLayout, opts.date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		now = d
	}

	var text string
	var err error
	if hasRecord {
		text, err = renderRecord(ctx, opts, now)
	} else {
		text, err = renderEstimateFile(opts, now)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func renderRecord(ctx context.Context, opts renderOptions, now time.Time) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	preparedBy := cfg.Report.PreparedBy
	if opts.preparedBy != "" {
		preparedBy = opts.preparedBy
	}
	logger, err := logging.NewLogger(cfg.Server.LogLevel)
	if err != nil {
		return "", fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	records, closeStore, err := bootstrap.OpenRecordReader(ctx, cfg.Store)
	if err != nil {
		return "", fmt.Errorf("open record store: %w", err)
	}
	defer closeStore()

	return regenerate(ctx, records, preparedBy, logger, opts.recordID, now)
}

func regenerate(ctx context.Context, records interfaces.IRecordRepository, preparedBy string, logger *zap.Logger, recordID string, now time.Time) (string, error) {
	uc := usecase.NewReportUseCase(usecase.ReportDeps{
		Records:   records,
		Formatter: report.NewFormatter(preparedBy),
		Logger:    logger,
	}, usecase.ReportOptions{})
	return uc.RegenerateReport(ctx, recordID, now)
}

func renderEstimateFile(opts renderOptions, now time.Time) (string, error) {
	raw, err := os.ReadFile(opts.estimatePath)
	if err != nil {
		return "", fmt.Errorf("read estimate: %w", err)
	}
	estimate, err := llm.ParseEstimate(raw)
	if err != nil {
		return "", fmt.Errorf("parse estimate: %w", err)
	}
	identity := entities.Identity{
		FirstName:       opts.firstName,
		LastName:        opts.lastName,
		PropertyAddress: opts.address,
	}
	return report.NewFormatter(opts.preparedBy).Format(identity, estimate, now), nil
}
