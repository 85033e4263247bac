// Package compliance provides the offline compliance report commands.
package compliance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/egest-app/egest/internal/application/compliance/dto"
	"github.com/egest-app/egest/internal/application/compliance/usecases"
	domain "github.com/egest-app/egest/internal/domain/compliance"
	"github.com/egest-app/egest/internal/infrastructure/catalog"
	"github.com/egest-app/egest/internal/infrastructure/config"
	"github.com/egest-app/egest/internal/infrastructure/database"
	"github.com/egest-app/egest/internal/infrastructure/repository"
	"github.com/egest-app/egest/internal/shared/biztime"
	"github.com/egest-app/egest/internal/shared/constants"
	"github.com/egest-app/egest/internal/shared/logger"
)

var (
	env        string
	entityType string
	asJSON     bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compliance",
		Short: "Compliance reports",
		Long:  `Evaluate document compliance from the command line without starting the server.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	cmd.AddCommand(newReportCommand(), newCatalogCommand())
	return cmd
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the compliance overview",
		RunE:  runReport,
	}
	cmd.Flags().StringVarP(&entityType, "entity-type", "t", "", "Restrict to one entity type")
	return cmd
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the requirement catalog",
		RunE:  runCatalog,
	}
}

func loadEnv() (*config.Config, *domain.Evaluator, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	cat, err := catalog.LoadCatalogFile(cfg.Compliance.CatalogPath)
	if err != nil {
		return nil, nil, err
	}
	evaluator := domain.NewEvaluator(cat, domain.WithExpiringWindowDays(cfg.Compliance.ExpiringWindowDays))
	return cfg, evaluator, nil
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, evaluator, err := loadEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	overview := usecases.NewGetComplianceOverviewUseCase(
		repository.NewComplianceEntityRepository(db),
		repository.NewComplianceDocumentRepository(db),
		evaluator,
		usecases.OverviewOptions{
			FetchConcurrency: cfg.Compliance.FetchConcurrency,
			Timeout:          cfg.Compliance.EvaluationTimeout(),
		},
		nil,
		logger.NewLogger(),
	)

	result, err := overview.Execute(context.Background(), usecases.GetComplianceOverviewQuery{EntityType: entityType})
	if err != nil {
		return err
	}
	return writeReport(cmd.OutOrStdout(), result, asJSON)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	_, evaluator, err := loadEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return writeCatalog(cmd.OutOrStdout(), usecases.NewGetCatalogUseCase(evaluator).Execute(context.Background()), asJSON)
}

func writeReport(w io.Writer, r *dto.ComplianceOverviewDTO, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, r)
	}

	p := message.NewPrinter(language.Italian)
	p.Fprintf(w, "Valutazione al %s: %d soggetti, %d pagabili, %d bloccati, %d in scadenza, %d critici\n\n",
		biztime.FormatDate(r.EvaluatedAt),
		r.Stats.Total, r.Stats.PayableCount, r.Stats.BlockedCount, r.Stats.ExpiringCount, r.Stats.CriticalCount)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOGGETTO\tTIPO\tPAGABILE\tCONFORMITÀ\tVALIDI\tIN SCADENZA\tSCADUTI\tMANCANTI")
	for _, s := range r.Statuses {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d%%\t%d\t%d\t%d\t%s\n",
			s.EntityName, s.EntityType, yesNo(s.Payable), s.CompliancePercentage,
			s.ValidCount, s.ExpiringCount, s.ExpiredCount, dashIfEmpty(strings.Join(s.MissingTypeCodes, ", ")))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Failures) > 0 {
		fmt.Fprintln(w, "\nSoggetti non valutabili:")
		for _, f := range r.Failures {
			fmt.Fprintf(w, "  %s (%s): %s\n", f.EntityName, f.EntityType, f.Error)
		}
	}
	return nil
}

func writeCatalog(w io.Writer, c *dto.CatalogDTO, jsonOut bool) error {
	if jsonOut {
		return writeJSON(w, c)
	}

	fmt.Fprintf(w, "Finestra di preavviso: %d giorni\n\n", c.ExpiringWindowDays)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIPO\tCODICE\tDOCUMENTO")
	for _, entry := range c.EntityTypes {
		for _, req := range entry.Requirements {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.EntityType, req.Code, req.Label)
		}
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "SI"
	}
	return "NO"
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
