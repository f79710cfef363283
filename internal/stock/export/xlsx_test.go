package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Stock_Report_2024-01.xlsx", FileName("2024-01"))
}

func TestWriteMonthlyReport(t *testing.T) {
	report := domain.BuildMonthlyReport("2024-01",
		[]domain.Color{{ID: 1, Name: "White", HexCode: "#FFFFFF"}},
		[]domain.Description{{ID: 1, Name: "A4 Paper", OpeningStock: 100}},
		[]domain.StockEntry{
			{DescriptionID: 1, EntryDate: domain.NewDate(2024, time.January, 5), PurchaseQty: 20},
			{DescriptionID: 1, EntryDate: domain.NewDate(2024, time.January, 10), UsageQty: 30},
		},
	)

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyReport(&buf, report))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetAllStock, SheetPurchase, SheetUsage}, f.GetSheetList())

	all, err := f.GetRows(SheetAllStock)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0], 3+31+31+3)
	assert.Equal(t, []string{"S/N", "Description", "Opening", "P-1"}, all[0][:4])
	assert.Equal(t, "U-1", all[0][34])
	assert.Equal(t, "Closing Stock", all[0][67])
	assert.Equal(t, "A4 Paper", all[1][1])
	assert.Equal(t, "20", all[1][3+4])
	assert.Equal(t, "30", all[1][34+9])
	assert.Equal(t, "90", all[1][67])

	purchase, err := f.GetRows(SheetPurchase)
	require.NoError(t, err)
	require.Len(t, purchase, 2)
	assert.Len(t, purchase[0], 3+31+2)
	assert.Equal(t, "Total Purchase", purchase[0][34])
	assert.Equal(t, "120", purchase[1][35])

	usage, err := f.GetRows(SheetUsage)
	require.NoError(t, err)
	require.Len(t, usage, 2)
	assert.Equal(t, "U-10", usage[0][12])
	assert.Equal(t, "70", usage[1][35])
}
