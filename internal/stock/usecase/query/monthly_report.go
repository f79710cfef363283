package query

import (
	"context"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// MonthlyReportQuery represents the query for a monthly ledger
type MonthlyReportQuery struct {
	// YearMonth is the raw YYYY-MM token; it is echoed back in the report.
	YearMonth string
}

// MonthlyReportHandler handles monthly report query
type MonthlyReportHandler struct {
	colors       domain.ColorRepository
	descriptions domain.DescriptionRepository
	entries      domain.StockEntryRepository
}

// NewMonthlyReportHandler creates a new monthly report handler
func NewMonthlyReportHandler(
	colors domain.ColorRepository,
	descriptions domain.DescriptionRepository,
	entries domain.StockEntryRepository,
) *MonthlyReportHandler {
	return &MonthlyReportHandler{
		colors:       colors,
		descriptions: descriptions,
		entries:      entries,
	}
}

// Handle builds the report for the requested month
func (h *MonthlyReportHandler) Handle(ctx context.Context, q MonthlyReportQuery) (*domain.MonthlyReport, error) {
	ym, err := domain.ParseYearMonth(q.YearMonth)
	if err != nil {
		return nil, err
	}

	colors, err := h.colors.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load colors: %w", err)
	}

	descriptions, err := h.descriptions.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptions: %w", err)
	}

	var entries []domain.StockEntry
	if from, to, ok := ym.Range(); ok {
		entries, err = h.entries.FindInPeriod(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to load stock entries: %w", err)
		}
	}

	return domain.BuildMonthlyReport(q.YearMonth, colors, descriptions, entries), nil
}
