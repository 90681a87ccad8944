// Package parquet provides data structures and functions for exporting render
// plans to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/dashviz/schema"
	"github.com/parquet-go/parquet-go"
)

// PlanRow is one plotted item, or one status row, of a render plan.
type PlanRow struct {
	// Target is the host element id (radarChart or wordcloud)
	Target string `parquet:"target,snappy,dict"`

	// Action is the action kind applied to the target
	Action string `parquet:"action,snappy,dict"`

	// Reason explains why the action was chosen
	Reason string `parquet:"reason,snappy,dict"`

	// ItemIndex is the position of the item in its sequence (nullable for status rows)
	ItemIndex *int32 `parquet:"item_index,optional,snappy"`

	// Text is the axis label or the keyword
	Text string `parquet:"text,snappy"`

	// Value is the radar score or the keyword weight
	Value float64 `parquet:"value,snappy"`

	// Color is the pre-drawn word colour (nullable for radar rows)
	Color *string `parquet:"color,optional,snappy"`

	// Message is the fallback text of a show_text action (nullable)
	Message *string `parquet:"message,optional,snappy"`
}

// ConvertPlan flattens a plan into rows. A mounted target yields one row per item;
// any other target yields a single status row.
func ConvertPlan(plan schema.RenderPlan) []PlanRow {
	var rows []PlanRow
	for _, action := range plan.Actions() {
		base := PlanRow{
			Target: action.ElementID,
			Action: string(action.Kind),
			Reason: string(action.Reason),
		}
		switch {
		case action.Kind == schema.MountChartAction && action.Chart != nil:
			rows = append(rows, chartRows(base, action.Chart)...)
		case action.Kind == schema.MountWordCloudAction && action.WordCloud != nil:
			rows = append(rows, wordCloudRows(base, action.WordCloud)...)
		default:
			if action.Message != "" {
				msg := action.Message
				base.Message = &msg
			}
			rows = append(rows, base)
		}
	}
	return rows
}

func chartRows(base PlanRow, cfg *schema.ChartConfig) []PlanRow {
	var values []float64
	if len(cfg.Data.Datasets) > 0 {
		values = cfg.Data.Datasets[0].Data
	}
	rows := make([]PlanRow, len(cfg.Data.Labels))
	for i, label := range cfg.Data.Labels {
		row := base
		idx := int32(i)
		row.ItemIndex = &idx
		row.Text = label
		if i < len(values) {
			row.Value = values[i]
		}
		rows[i] = row
	}
	return rows
}

func wordCloudRows(base PlanRow, cfg *schema.WordCloudConfig) []PlanRow {
	rows := make([]PlanRow, len(cfg.List))
	for i, kw := range cfg.List {
		row := base
		idx := int32(i)
		row.ItemIndex = &idx
		row.Text = kw.Text
		row.Value = float64(kw.Weight)
		if i < len(cfg.Colors) {
			c := cfg.Colors[i]
			row.Color = &c
		}
		rows[i] = row
	}
	return rows
}

// WritePlanRows writes rows as a Parquet stream to w.
func WritePlanRows(w io.Writer, rows []PlanRow) error {
	// The schema is derived from the PlanRow struct tags
	writer := parquet.NewGenericWriter[PlanRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WritePlanRowsParquet writes rows to a Parquet file at outputPath.
func WritePlanRowsParquet(rows []PlanRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WritePlanRows(file, rows)
}

// ReadPlanRowsParquet reads back rows written by WritePlanRowsParquet.
func ReadPlanRowsParquet(path string) ([]PlanRow, error) {
	rows, err := parquet.ReadFile[PlanRow](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return rows, nil
}
