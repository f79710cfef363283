package kafka

import "time"

// StockEntryRecordedEvent is emitted after a stock entry is committed
type StockEntryRecordedEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	EntryID       uint      `json:"entry_id"`
	EntryDate     string    `json:"entry_date"`
	DescriptionID uint      `json:"description_id"`
	ColorID       uint      `json:"color_id"`
	PurchaseQty   int       `json:"purchase_qty"`
	UsageQty      int       `json:"usage_qty"`
	Reason        *string   `json:"reason,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// OpeningStockRolledOverEvent is emitted after a month's closing stock became the new opening stock
type OpeningStockRolledOverEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	YearMonth string    `json:"year_month"`
	Updated   int       `json:"updated"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockEntryRecorded     = "stock.entry.recorded"
	EventTypeOpeningStockRolledOver = "opening_stock.rolled_over"
)

// DefaultTopic is the topic stock events are published to when none is configured
const DefaultTopic = "stock-events"
