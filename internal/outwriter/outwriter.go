// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/parquet"
	"github.com/huangsam/dashviz/schema"
)

// PrintPlan writes the plan to the configured output file, or stdout.
func PrintPlan(plan schema.RenderPlan, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WritePlan(w, plan, cfg, duration)
	}, successMessage(cfg.Output))
}

// WritePlan outputs the plan to w, dispatching based on the output format configured.
func WritePlan(w io.Writer, plan schema.RenderPlan, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, plan); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writePlanCSV(w, plan, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WritePlanRows(w, parquet.ConvertPlan(plan)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writePlanTable(w, plan, cfg, fmtFloat, duration)
	}
	return nil
}

func successMessage(mode schema.OutputMode) string {
	switch mode {
	case schema.JSONOut:
		return "Wrote JSON"
	case schema.CSVOut:
		return "Wrote CSV"
	case schema.ParquetOut:
		return "Wrote Parquet"
	default:
		return "Wrote table"
	}
}
