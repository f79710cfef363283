package command

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/pkg/logger"
)

// CreateStockEntryCommand represents the command to record a purchase and/or usage
type CreateStockEntryCommand struct {
	EntryDate     domain.Date
	DescriptionID int64
	ColorID       int64
	PurchaseQty   int
	UsageQty      int
	Reason        *string
}

// CreateStockEntryHandler handles create stock entry command
type CreateStockEntryHandler struct {
	descriptions domain.DescriptionRepository
	colors       domain.ColorRepository
	entries      domain.StockEntryRepository
	publisher    domain.EventPublisher
}

// NewCreateStockEntryHandler creates a new create stock entry handler
func NewCreateStockEntryHandler(
	descriptions domain.DescriptionRepository,
	colors domain.ColorRepository,
	entries domain.StockEntryRepository,
	publisher domain.EventPublisher,
) *CreateStockEntryHandler {
	return &CreateStockEntryHandler{
		descriptions: descriptions,
		colors:       colors,
		entries:      entries,
		publisher:    publisher,
	}
}

// Handle executes the create stock entry command
func (h *CreateStockEntryHandler) Handle(ctx context.Context, cmd CreateStockEntryCommand) (*domain.StockEntry, error) {
	// Ids below 1 never match a row.
	if cmd.DescriptionID <= 0 {
		return nil, domain.ErrDescriptionNotFound
	}
	if _, err := h.descriptions.FindByID(ctx, uint(cmd.DescriptionID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrDescriptionNotFound
		}
		return nil, fmt.Errorf("failed to load description: %w", err)
	}

	if cmd.ColorID <= 0 {
		return nil, domain.ErrColorNotFound
	}
	if _, err := h.colors.FindByID(ctx, uint(cmd.ColorID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to load color: %w", err)
	}

	if cmd.PurchaseQty < 0 {
		return nil, domain.NewError(domain.ErrValidation, "purchase_qty cannot be negative")
	}
	if cmd.UsageQty < 0 {
		return nil, domain.NewError(domain.ErrValidation, "usage_qty cannot be negative")
	}
	if cmd.EntryDate.IsZero() {
		return nil, domain.NewError(domain.ErrValidation, "entry_date is required")
	}
	if cmd.Reason != nil && utf8.RuneCountInString(*cmd.Reason) > 255 {
		return nil, domain.NewError(domain.ErrValidation, "reason must be at most 255 characters")
	}

	entry := &domain.StockEntry{
		EntryDate:     cmd.EntryDate,
		DescriptionID: uint(cmd.DescriptionID),
		ColorID:       uint(cmd.ColorID),
		PurchaseQty:   cmd.PurchaseQty,
		UsageQty:      cmd.UsageQty,
		Reason:        cmd.Reason,
	}
	if err := h.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create stock entry: %w", err)
	}

	if err := h.publisher.PublishStockEntryRecorded(ctx, entry); err != nil {
		logger.Warn(ctx).
			Err(err).
			Uint("entry_id", entry.ID).
			Msg("Failed to publish stock entry event")
	}

	return entry, nil
}
