package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/controleponto/ponto/internal/config"
	"github.com/controleponto/ponto/internal/punch"
	"github.com/controleponto/ponto/internal/report"
	"github.com/controleponto/ponto/internal/store"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit the attendance spreadsheet",
	Long: `Classify every punch in the attendance spreadsheet against the
checkpoint schedule and summarize the result: totals per status and the
irregularity ranking per employee.`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().Bool("json", false, "Print the summary as JSON")
}

// AuditResult is the machine-readable audit summary.
type AuditResult struct {
	TotalPunches   int                        `json:"total_punches"`
	StatusTotals   []report.StatusCount       `json:"status_totals"`
	Irregularities []report.IrregularityCount `json:"irregularities"`
	DurationMs     int64                      `json:"duration_ms"`
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	asJSON := mustGetBool(cmd, "json")

	s := store.New(cfg.Store.Path)
	punches, err := s.LoadAll()
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.Store.Path, err)
	}

	started := time.Now()

	var bar *progressbar.ProgressBar
	if !asJSON {
		bar = progressbar.NewOptions(len(punches),
			progressbar.OptionSetDescription("Classifying punches"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("punches"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
		)
	}

	classified := make([]punch.Punch, 0, len(punches))
	for _, p := range punches {
		p.Status = cfg.Schedule.Classify(p.Timestamp)
		classified = append(classified, p)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		fmt.Println()
	}

	counts, _ := report.IrregularityRanking(classified)
	result := AuditResult{
		TotalPunches:   len(classified),
		StatusTotals:   report.StatusDistribution(classified),
		Irregularities: counts,
		DurationMs:     time.Since(started).Milliseconds(),
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Total de registros: %d\n", result.TotalPunches)
	fmt.Println("Status:")
	for _, sc := range result.StatusTotals {
		fmt.Printf("  %-20s %d\n", sc.Status, sc.Total)
	}
	if len(result.Irregularities) == 0 {
		fmt.Println("Nenhuma irregularidade registrada")
	} else {
		fmt.Println("Irregularidades por funcionário:")
		for _, ic := range result.Irregularities {
			fmt.Printf("  %-20s %d\n", ic.Nome, ic.Total)
		}
	}
	return nil
}
