package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthlyReport(t *testing.T) {
	colors := []Color{{ID: 1, Name: "White", HexCode: "#FFFFFF"}}
	descriptions := []Description{
		{ID: 7, Name: "A4 Paper", OpeningStock: 100},
		{ID: 9, Name: "A4 Card", OpeningStock: 5},
	}
	entries := []StockEntry{
		{DescriptionID: 7, ColorID: 1, EntryDate: NewDate(2024, time.January, 5), PurchaseQty: 20},
		{DescriptionID: 7, ColorID: 1, EntryDate: NewDate(2024, time.January, 10), UsageQty: 30},
		{DescriptionID: 9, ColorID: 1, EntryDate: NewDate(2024, time.January, 31), PurchaseQty: 1, UsageQty: 2},
		{DescriptionID: 9, ColorID: 1, EntryDate: NewDate(2024, time.January, 31), PurchaseQty: 3},
		{DescriptionID: 42, ColorID: 1, EntryDate: NewDate(2024, time.January, 1), PurchaseQty: 999},
	}

	report := BuildMonthlyReport("2024-01", colors, descriptions, entries)

	assert.Equal(t, "2024-01", report.YearMonth)
	assert.Equal(t, []ReportColor{{ID: 1, Name: "White", HexCode: "#FFFFFF"}}, report.Colors)
	require.Len(t, report.Data, 2)

	paper := report.Data[0]
	assert.Equal(t, 1, paper.SN)
	assert.Equal(t, "A4 Paper", paper.Description)
	assert.Equal(t, 20, paper.Purchase[4])
	assert.Equal(t, 30, paper.Usage[9])
	assert.Equal(t, 20, paper.TotalPurchase)
	assert.Equal(t, 30, paper.TotalUsage)
	assert.Equal(t, 90, paper.ClosingStock)
	assert.Equal(t, 120, paper.ClosingStockPurchase)
	assert.Equal(t, 70, paper.ClosingStockUsage)

	card := report.Data[1]
	assert.Equal(t, 2, card.SN)
	assert.Equal(t, 4, card.Purchase[30])
	assert.Equal(t, 2, card.Usage[30])
	assert.Equal(t, 7, card.ClosingStock)

	assert.Equal(t, map[uint]int{7: 90, 9: 7}, report.ClosingStocks())
}

func TestBuildMonthlyReportEmpty(t *testing.T) {
	report := BuildMonthlyReport("2024-13", nil, []Description{{ID: 1, Name: "A4", OpeningStock: 3}}, nil)

	require.Len(t, report.Data, 1)
	row := report.Data[0]
	assert.Equal(t, 3, row.ClosingStock)
	assert.Equal(t, 3, row.ClosingStockPurchase)
	assert.Equal(t, 3, row.ClosingStockUsage)
	assert.NotNil(t, report.Colors)
}

func TestReportRowMarshalJSON(t *testing.T) {
	row := ReportRow{SN: 1, DescriptionID: 7, Description: "A4 Paper", OpeningStock: 100, TotalPurchase: 20}
	row.Purchase[4] = 20

	out, err := json.Marshal(row)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))
	assert.Len(t, fields, 3+2*DaysInReport+5)
	assert.EqualValues(t, 20, fields["purchase_day_05"])
	assert.EqualValues(t, 0, fields["usage_day_31"])
	assert.NotContains(t, fields, "description_id")

	s := string(out)
	assert.True(t, strings.HasPrefix(s, `{"sn":1,"description":"A4 Paper","opening_stock":100,"purchase_day_01":0`))
	assert.Less(t, strings.Index(s, `"purchase_day_31"`), strings.Index(s, `"usage_day_01"`))
	assert.True(t, strings.HasSuffix(s, `"closing_stock_purchase":0,"closing_stock_usage":0}`))
}
