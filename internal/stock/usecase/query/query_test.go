package query

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

type stubColorRepo struct {
	domain.ColorRepository
	colors []domain.Color
	err    error
}

func (r *stubColorRepo) FindAll(context.Context) ([]domain.Color, error) {
	return r.colors, r.err
}

type stubDescriptionRepo struct {
	domain.DescriptionRepository
	descriptions []domain.Description
	err          error
}

func (r *stubDescriptionRepo) FindAll(context.Context) ([]domain.Description, error) {
	return r.descriptions, r.err
}

type stubEntryRepo struct {
	domain.StockEntryRepository
	entries []domain.StockEntry
	calls   int
}

func (r *stubEntryRepo) FindInPeriod(_ context.Context, from, to domain.Date) ([]domain.StockEntry, error) {
	r.calls++
	var out []domain.StockEntry
	for _, e := range r.entries {
		if !e.EntryDate.Before(from.Time) && e.EntryDate.Before(to.Time) {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestListHandlersReturnEmptySlices(t *testing.T) {
	colors, err := NewListColorsHandler(&stubColorRepo{}).Handle(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, colors)
	assert.Empty(t, colors)

	descriptions, err := NewListDescriptionsHandler(&stubDescriptionRepo{}).Handle(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, descriptions)
}

func TestListColorsHandlerError(t *testing.T) {
	_, err := NewListColorsHandler(&stubColorRepo{err: assert.AnError}).Handle(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMonthlyReportHandler(t *testing.T) {
	colors := &stubColorRepo{colors: []domain.Color{{ID: 1, Name: "White", HexCode: "#FFFFFF"}}}
	descriptions := &stubDescriptionRepo{descriptions: []domain.Description{{ID: 1, Name: "A4 Paper", OpeningStock: 100}}}
	entries := &stubEntryRepo{entries: []domain.StockEntry{
		{DescriptionID: 1, ColorID: 1, EntryDate: domain.NewDate(2024, time.January, 5), PurchaseQty: 20},
		{DescriptionID: 1, ColorID: 1, EntryDate: domain.NewDate(2024, time.January, 10), UsageQty: 30},
		{DescriptionID: 1, ColorID: 1, EntryDate: domain.NewDate(2024, time.February, 1), PurchaseQty: 500},
		{DescriptionID: 1, ColorID: 1, EntryDate: domain.NewDate(2023, time.December, 31), UsageQty: 500},
	}}
	h := NewMonthlyReportHandler(colors, descriptions, entries)

	report, err := h.Handle(context.Background(), MonthlyReportQuery{YearMonth: "2024-01"})
	require.NoError(t, err)
	assert.Equal(t, "2024-01", report.YearMonth)
	require.Len(t, report.Data, 1)

	row := report.Data[0]
	assert.Equal(t, 20, row.Purchase[4])
	assert.Equal(t, 30, row.Usage[9])
	assert.Equal(t, 20, row.TotalPurchase)
	assert.Equal(t, 30, row.TotalUsage)
	assert.Equal(t, 90, row.ClosingStock)
	assert.Equal(t, 120, row.ClosingStockPurchase)
	assert.Equal(t, 70, row.ClosingStockUsage)
}

func TestMonthlyReportHandlerPeriods(t *testing.T) {
	tests := []struct {
		yearMonth string
		wantErr   bool
		wantCalls int
	}{
		{yearMonth: "2024-13", wantCalls: 0},
		{yearMonth: "0-01", wantCalls: 0},
		{yearMonth: "2024-1", wantCalls: 1},
		{yearMonth: "2024", wantErr: true},
		{yearMonth: "abcd-01", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.yearMonth, func(t *testing.T) {
			entries := &stubEntryRepo{}
			descriptions := &stubDescriptionRepo{descriptions: []domain.Description{{ID: 1, Name: "A4", OpeningStock: 4}}}
			h := NewMonthlyReportHandler(&stubColorRepo{}, descriptions, entries)

			report, err := h.Handle(context.Background(), MonthlyReportQuery{YearMonth: tt.yearMonth})
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidYearMonth)
				assert.Nil(t, report)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, entries.calls)
			require.Len(t, report.Data, 1)
			assert.Equal(t, 4, report.Data[0].ClosingStock)
		})
	}
}
