// Package export renders monthly reports as spreadsheet workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// Sheet names of the monthly workbook.
const (
	SheetAllStock = "All Stock"
	SheetPurchase = "Purchase"
	SheetUsage    = "Usage"
)

// ContentType is the MIME type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileName returns the download name for a period's workbook.
func FileName(yearMonth string) string {
	return fmt.Sprintf("Stock_Report_%s.xlsx", yearMonth)
}

type sheetLayout struct {
	name     string
	purchase bool
	usage    bool
	closing  func(domain.ReportRow) int
}

var layouts = []sheetLayout{
	{name: SheetAllStock, purchase: true, usage: true, closing: func(r domain.ReportRow) int { return r.ClosingStock }},
	{name: SheetPurchase, purchase: true, closing: func(r domain.ReportRow) int { return r.ClosingStockPurchase }},
	{name: SheetUsage, usage: true, closing: func(r domain.ReportRow) int { return r.ClosingStockUsage }},
}

// WriteMonthlyReport writes the report as a workbook with one sheet per ledger view.
func WriteMonthlyReport(w io.Writer, report *domain.MonthlyReport) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, layout := range layouts {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", layout.name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(layout.name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", layout.name, err)
		}
		if err := writeSheet(f, layout, report, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, layout sheetLayout, report *domain.MonthlyReport, headerStyle int) error {
	header := []any{"S/N", "Description", "Opening"}
	if layout.purchase {
		for day := 1; day <= domain.DaysInReport; day++ {
			header = append(header, fmt.Sprintf("P-%d", day))
		}
	}
	if layout.usage {
		for day := 1; day <= domain.DaysInReport; day++ {
			header = append(header, fmt.Sprintf("U-%d", day))
		}
	}
	if layout.purchase {
		header = append(header, "Total Purchase")
	}
	if layout.usage {
		header = append(header, "Total Usage")
	}
	header = append(header, "Closing Stock")

	if err := f.SetSheetRow(layout.name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", layout.name, err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(layout.name, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", layout.name, err)
	}
	if err := f.SetColWidth(layout.name, "B", "B", 30); err != nil {
		return err
	}

	for i, row := range report.Data {
		values := []any{row.SN, row.Description, row.OpeningStock}
		if layout.purchase {
			for _, qty := range row.Purchase {
				values = append(values, qty)
			}
		}
		if layout.usage {
			for _, qty := range row.Usage {
				values = append(values, qty)
			}
		}
		if layout.purchase {
			values = append(values, row.TotalPurchase)
		}
		if layout.usage {
			values = append(values, row.TotalUsage)
		}
		values = append(values, layout.closing(row))

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(layout.name, cell, &values); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", layout.name, row.SN, err)
		}
	}
	return nil
}
