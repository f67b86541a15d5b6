package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/tkaraca/icra-analiz/internal/common"
	"github.com/tkaraca/icra-analiz/internal/export"
	"github.com/tkaraca/icra-analiz/internal/pipeline"
	"github.com/tkaraca/icra-analiz/internal/rules"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir       = flag.String("dir", "", "directory holding the case export to analyze (required)")
		out       = flag.String("out", "", "output XLSX path (defaults to <dir parent>/takip-raporu.xlsx)")
		jsonOut   = flag.String("json", "", "optional JSON result dump path")
		rulesPath = flag.String("rules", "", "rules JSON file overriding the embedded defaults")
		workers   = flag.Int("workers", 0, "per-document fan-out width (defaults to PIPELINE_WORKERS or CPU count)")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "takip-raporu.xlsx")
	}

	cfg := common.LoadConfig()
	if *rulesPath != "" {
		cfg.Pipeline.RulesPath = *rulesPath
	}
	if *workers > 0 {
		cfg.Pipeline.Workers = *workers
	}
	logger := common.NewLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Rule-set load failures are fatal: a broken tariff or pattern list
	// would corrupt every downstream computation.
	ruleSet, err := rules.Load(cfg.Pipeline.RulesPath)
	if err != nil {
		logger.Error("failed to load rules", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	processor, err := pipeline.NewProcessor(ruleSet, cfg.Pipeline.Workers, logger)
	if err != nil {
		logger.Error("failed to build pipeline", "error", err)
		os.Exit(1)
	}

	logger.Info("starting batch", "dir", *dir, "workers", cfg.Pipeline.Workers)
	batch, err := processor.ProcessDirectory(ctx, *dir)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(logger)

	xlsxBytes, err := exporter.WriteXLSX(batch)
	if err != nil {
		logger.Error("failed to render report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write report", "path", *out, "error", err)
		os.Exit(1)
	}

	if *jsonOut != "" {
		jsonBytes, err := exporter.WriteJSON(batch)
		if err != nil {
			logger.Error("failed to encode results", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, jsonBytes, 0644); err != nil {
			logger.Error("failed to write results", "path", *jsonOut, "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Analiz tamamlandı!\n")
	fmt.Printf("- Belge: %d (atlanan: %d)\n", len(batch.Documents), len(batch.Skipped))
	fmt.Printf("- Toplam bloke: %.2f TL\n", batch.Notices.TotalBlocked)
	fmt.Printf("- Eksik ihbarname: %d\n", len(batch.Notices.MissingNotices))
	fmt.Printf("- Takipteki haciz: %d\n", len(batch.Deadlines.Records))
	fmt.Printf("- Rapor: %s\n", *out)
}
