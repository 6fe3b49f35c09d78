// Package export renders orders as spreadsheets for the workshop.
package export

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"roomcraft/internal/domain"
	"roomcraft/internal/pricing"
)

// CutListHeader заголовки листа раскроя
var CutListHeader = []string{
	"Item",
	"Instance",
	"Wing",
	"Panel",
	"Width cm",
	"Length cm",
	"Area m²",
	"Material",
	"Color",
	"Cost",
}

var cutListWidths = []float64{22, 38, 10, 24, 10, 10, 10, 16, 18, 10}

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SheetName returns the worksheet name used for an order.
func SheetName(o domain.Order) string {
	name := o.ID
	if name == "" {
		name = "Order"
	}
	// excelize rejects sheet names longer than 31 characters
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

// CutList builds a workbook listing every panel of every item in o with its
// scaled size, area and material cost, followed by the totals.
func CutList(o domain.Order) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(o)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create total style: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &CutListHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(CutListHeader))
	if err := f.SetCellStyle(sheet, "A1", last+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	for i, w := range cutListWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	row := 2
	area, cost := decimal.Zero, decimal.Zero
	for _, it := range o.Items {
		// markup does not affect panel costs
		b := pricing.ItemBreakdown(it, 0)
		colorName := ""
		if b.Color != nil {
			colorName = b.Color.Name
		}
		for _, p := range b.Panels {
			values := []any{
				it.Template.Name,
				it.InstanceID,
				string(p.Wing),
				p.Name,
				round(p.Width, 1),
				round(p.Length, 1),
				round(p.Area, 4),
				b.Material.Name,
				colorName,
				round(p.Cost, 2),
			}
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", row, err)
			}
			area = area.Add(decimal.NewFromFloat(p.Area))
			cost = cost.Add(decimal.NewFromFloat(p.Cost))
			row++
		}
	}

	totals := [][]any{
		{"Materials", "", "", "", "", "", area.Round(4).InexactFloat64(), "", "", cost.Round(2).InexactFloat64()},
		{"Order total", "", "", "", "", "", "", "", "", o.TotalPrice},
	}
	for _, values := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write totals: %w", err)
		}
		end, _ := excelize.CoordinatesToCellName(len(CutListHeader), row)
		if err := f.SetCellStyle(sheet, cell, end, totalStyle); err != nil {
			return nil, fmt.Errorf("failed to set total style: %w", err)
		}
		row++
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
