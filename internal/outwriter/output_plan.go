package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/dashviz/internal/contract"
	"github.com/huangsam/dashviz/internal/parquet"
	"github.com/huangsam/dashviz/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writePlanTable generates and writes the human-readable tables: one row per
// action, then one row per plotted item when anything is mounted.
func writePlanTable(w io.Writer, plan schema.RenderPlan, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	maxDetail := getMaxTableDetailWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Target", "Action", "Reason", "Detail"})

	var data [][]string
	for _, action := range plan.Actions() {
		kind := contract.GetPlainKind(action.Kind)
		if cfg.UseColors {
			kind = contract.GetColorKind(action.Kind)
		}
		data = append(data, []string{
			action.ElementID,
			kind,
			string(action.Reason),
			contract.TruncateText(actionDetail(action), maxDetail),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	rows := parquet.ConvertPlan(plan)
	items := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.ItemIndex == nil {
			continue
		}
		color := ""
		if r.Color != nil {
			color = *r.Color
		}
		items = append(items, []string{
			r.Target,
			strconv.Itoa(int(*r.ItemIndex) + 1),
			contract.TruncateText(r.Text, maxDetail),
			fmtFloat(r.Value),
			color,
		})
	}
	if len(items) > 0 {
		itemTable := tablewriter.NewWriter(w)
		itemTable.Header([]string{"Target", "#", "Item", "Value", "Color"})
		itemTable.Configure(func(c *tablewriter.Config) {
			c.Row.Alignment.Global = tw.AlignRight
		})
		if err := itemTable.Bulk(items); err != nil {
			return err
		}
		if err := itemTable.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Planned %d items across 2 targets in %v\n", len(items), duration); err != nil {
		return err
	}
	return nil
}

// actionDetail summarizes what an action carries.
func actionDetail(action schema.Action) string {
	switch action.Kind {
	case schema.MountChartAction:
		if action.Chart != nil {
			return fmt.Sprintf("%s chart with %d axes", action.Chart.Type, len(action.Chart.Data.Labels))
		}
	case schema.MountWordCloudAction:
		if action.WordCloud != nil {
			return fmt.Sprintf("%d words", len(action.WordCloud.List))
		}
	case schema.ShowTextAction:
		return action.Message
	}
	return "-"
}

// writePlanCSV writes one CSV row per plotted item, or per status for unmounted targets.
func writePlanCSV(w io.Writer, plan schema.RenderPlan, fmtFloat func(float64) string) error {
	header := []string{"target", "action", "reason", "index", "text", "value", "color", "message"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range parquet.ConvertPlan(plan) {
			index, value, color, message := "", "", "", ""
			if r.ItemIndex != nil {
				index = strconv.Itoa(int(*r.ItemIndex))
				value = fmtFloat(r.Value)
			}
			if r.Color != nil {
				color = *r.Color
			}
			if r.Message != nil {
				message = *r.Message
			}
			if err := cw.Write([]string{r.Target, r.Action, r.Reason, index, r.Text, value, color, message}); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	})
}
