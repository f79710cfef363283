package command

import (
	"context"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/usecase/query"
	"github.com/tair/stock-tracker/pkg/logger"
)

// RolloverOpeningStockCommand represents the command to carry a month's closing stock forward
type RolloverOpeningStockCommand struct {
	YearMonth string
}

// RolloverResult reports the outcome of a rollover.
type RolloverResult struct {
	Message string `json:"message"`
	Updated int    `json:"updated"`
}

// RolloverOpeningStockHandler handles rollover opening stock command
type RolloverOpeningStockHandler struct {
	report       *query.MonthlyReportHandler
	descriptions domain.DescriptionRepository
	publisher    domain.EventPublisher
}

// NewRolloverOpeningStockHandler creates a new rollover opening stock handler
func NewRolloverOpeningStockHandler(
	report *query.MonthlyReportHandler,
	descriptions domain.DescriptionRepository,
	publisher domain.EventPublisher,
) *RolloverOpeningStockHandler {
	return &RolloverOpeningStockHandler{
		report:       report,
		descriptions: descriptions,
		publisher:    publisher,
	}
}

// Handle sets every description's opening stock to its closing stock for the month.
// Descriptions are matched by id; ones deleted since the report was read are skipped.
func (h *RolloverOpeningStockHandler) Handle(ctx context.Context, cmd RolloverOpeningStockCommand) (*RolloverResult, error) {
	report, err := h.report.Handle(ctx, query.MonthlyReportQuery{YearMonth: cmd.YearMonth})
	if err != nil {
		return nil, err
	}

	updated, err := h.descriptions.UpdateOpeningStocks(ctx, report.ClosingStocks())
	if err != nil {
		return nil, fmt.Errorf("failed to roll over opening stock: %w", err)
	}

	if err := h.publisher.PublishOpeningStockRolledOver(ctx, cmd.YearMonth, updated); err != nil {
		logger.Warn(ctx).
			Err(err).
			Str("year_month", cmd.YearMonth).
			Msg("Failed to publish rollover event")
	}

	return &RolloverResult{
		Message: fmt.Sprintf("Opening stock updated for period after %s", cmd.YearMonth),
		Updated: updated,
	}, nil
}
