package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/firm_books/internal/core/domain"
	portssvc "github.com/SscSPs/firm_books/internal/core/ports/services"
	"github.com/SscSPs/firm_books/internal/core/services"
	"github.com/SscSPs/firm_books/internal/dto"
	"github.com/SscSPs/firm_books/internal/repositories/memory"
	"github.com/spf13/cobra"
)

var (
	reportFile string
	reportFrom string
	reportTo   string
)

// reportKinds maps a report name to the service call producing it.
var reportKinds = map[string]func(portssvc.ReportingService, context.Context, domain.Period) (any, error){
	"trial-balance": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.TrialBalance(ctx, p)
	},
	"profit-and-loss": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.ProfitAndLoss(ctx, p)
	},
	"balance-sheet": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.BalanceSheet(ctx, p)
	},
	"general-ledger": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.GeneralLedger(ctx, p)
	},
	"cash-book": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.CashBook(ctx, p)
	},
	"journal-book": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.JournalBook(ctx, p)
	},
	"summary": func(s portssvc.ReportingService, ctx context.Context, p domain.Period) (any, error) {
		return s.Summary(ctx, p)
	},
}

func reportNames() []string {
	names := make([]string, 0, len(reportKinds))
	for name := range reportKinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// reportCmd represents the report command.
var reportCmd = &cobra.Command{
	Use:   "report <kind>",
	Short: "Produce a statement from an exported transactions file",
	Long: `Loads an exported transactions file into memory and prints one statement.

Kinds: ` + strings.Join(reportNames(), ", ") + `

Example:
  booksctl report trial-balance --file export.json
  booksctl report profit-and-loss --file export.json --from 2024-04-01 --to 2025-03-31 -o yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: reportNames(),
	RunE:      runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportFile, "file", "f", "", "exported transactions JSON file (required)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "first date to include (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "last date to include (YYYY-MM-DD)")
	_ = reportCmd.MarkFlagRequired("file")
}

func runReport(cmd *cobra.Command, args []string) error {
	build, ok := reportKinds[args[0]]
	if !ok {
		return fmt.Errorf("unknown report %q (want one of %s)", args[0], strings.Join(reportNames(), ", "))
	}

	period, err := parsePeriod(reportFrom, reportTo)
	if err != nil {
		return err
	}

	container, err := services.NewServiceContainer(cfg, memory.NewRepositoryProvider())
	if err != nil {
		return err
	}

	f, err := os.Open(reportFile)
	if err != nil {
		return fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	imported, err := container.Journal.ImportJournals(ctx, f, "booksctl")
	if err != nil {
		return err
	}
	for _, w := range imported.Warnings {
		slog.Warn("Import warning", slog.String("warning", w))
	}
	slog.Debug("Export loaded", slog.Int("entries", imported.Imported))

	result, err := build(container.Reporting, ctx, period)
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), result)
}

func parsePeriod(from, to string) (domain.Period, error) {
	var period domain.Period
	if from != "" {
		t, err := time.Parse(dto.DateLayout, from)
		if err != nil {
			return period, fmt.Errorf("--from must be YYYY-MM-DD: %w", err)
		}
		period.From = &t
	}
	if to != "" {
		t, err := time.Parse(dto.DateLayout, to)
		if err != nil {
			return period, fmt.Errorf("--to must be YYYY-MM-DD: %w", err)
		}
		period.To = &t
	}
	return period, nil
}
