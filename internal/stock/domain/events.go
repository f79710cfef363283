package domain

import "context"

// EventPublisher announces committed stock changes to other systems.
type EventPublisher interface {
	PublishStockEntryRecorded(ctx context.Context, entry *StockEntry) error
	PublishOpeningStockRolledOver(ctx context.Context, yearMonth string, updated int) error
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishStockEntryRecorded(context.Context, *StockEntry) error { return nil }

func (NoopPublisher) PublishOpeningStockRolledOver(context.Context, string, int) error { return nil }
