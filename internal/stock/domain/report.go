package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DaysInReport is the fixed number of daily slots in a report row.
const DaysInReport = 31

// ReportColor is the color metadata carried by a monthly report.
type ReportColor struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

// ReportRow is one description's ledger for a month.
type ReportRow struct {
	SN            int
	DescriptionID uint
	Description   string
	OpeningStock  int
	Purchase      [DaysInReport]int
	Usage         [DaysInReport]int
	TotalPurchase int
	TotalUsage    int
	// ClosingStock is opening + purchases - usage.
	ClosingStock int
	// ClosingStockPurchase is opening + purchases.
	ClosingStockPurchase int
	// ClosingStockUsage is opening - usage.
	ClosingStockUsage int
}

// MonthlyReport is the per-description ledger for one period.
type MonthlyReport struct {
	YearMonth string        `json:"year_month"`
	Colors    []ReportColor `json:"colors"`
	Data      []ReportRow   `json:"data"`
}

// BuildMonthlyReport aggregates entries into one row per description, in the order given.
// Entries of descriptions that are not listed are ignored; entries must already be
// restricted to the reported month.
func BuildMonthlyReport(yearMonth string, colors []Color, descriptions []Description, entries []StockEntry) *MonthlyReport {
	report := &MonthlyReport{
		YearMonth: yearMonth,
		Colors:    make([]ReportColor, 0, len(colors)),
		Data:      make([]ReportRow, 0, len(descriptions)),
	}
	for _, c := range colors {
		report.Colors = append(report.Colors, ReportColor{ID: c.ID, Name: c.Name, HexCode: c.HexCode})
	}

	index := make(map[uint]int, len(descriptions))
	for i, d := range descriptions {
		index[d.ID] = i
		report.Data = append(report.Data, ReportRow{
			SN:            i + 1,
			DescriptionID: d.ID,
			Description:   d.Name,
			OpeningStock:  d.OpeningStock,
		})
	}

	for _, e := range entries {
		i, ok := index[e.DescriptionID]
		if !ok {
			continue
		}
		row := &report.Data[i]
		day := e.EntryDate.Day() - 1
		row.Purchase[day] += e.PurchaseQty
		row.Usage[day] += e.UsageQty
		row.TotalPurchase += e.PurchaseQty
		row.TotalUsage += e.UsageQty
	}

	for i := range report.Data {
		row := &report.Data[i]
		row.ClosingStock = row.OpeningStock + row.TotalPurchase - row.TotalUsage
		row.ClosingStockPurchase = row.OpeningStock + row.TotalPurchase
		row.ClosingStockUsage = row.OpeningStock - row.TotalUsage
	}
	return report
}

// MarshalJSON writes the flat row layout with keys in ledger order.
func (r ReportRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	writeField := func(key string, value any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.WriteString(`"` + key + `":`)
		buf.Write(encoded)
		return nil
	}

	if err := writeField("sn", r.SN); err != nil {
		return nil, err
	}
	if err := writeField("description", r.Description); err != nil {
		return nil, err
	}
	if err := writeField("opening_stock", r.OpeningStock); err != nil {
		return nil, err
	}
	for day, qty := range r.Purchase {
		if err := writeField(fmt.Sprintf("purchase_day_%02d", day+1), qty); err != nil {
			return nil, err
		}
	}
	for day, qty := range r.Usage {
		if err := writeField(fmt.Sprintf("usage_day_%02d", day+1), qty); err != nil {
			return nil, err
		}
	}
	tail := []struct {
		key   string
		value int
	}{
		{"total_purchase", r.TotalPurchase},
		{"total_usage", r.TotalUsage},
		{"closing_stock", r.ClosingStock},
		{"closing_stock_purchase", r.ClosingStockPurchase},
		{"closing_stock_usage", r.ClosingStockUsage},
	}
	for _, f := range tail {
		if err := writeField(f.key, f.value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ClosingStocks maps description id to the combined closing stock of each row.
func (m *MonthlyReport) ClosingStocks() map[uint]int {
	out := make(map[uint]int, len(m.Data))
	for _, row := range m.Data {
		out[row.DescriptionID] = row.ClosingStock
	}
	return out
}
