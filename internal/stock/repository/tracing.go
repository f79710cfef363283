package repository

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// endSpan records err on the span. Not-found lookups are expected and leave the span unset.
func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ColorRepositoryWithTracing wraps a ColorRepository with tracing
type ColorRepositoryWithTracing struct {
	next domain.ColorRepository
}

// NewColorRepositoryWithTracing creates a new color repository with tracing
func NewColorRepositoryWithTracing(next domain.ColorRepository) *ColorRepositoryWithTracing {
	return &ColorRepositoryWithTracing{next: next}
}

func (r *ColorRepositoryWithTracing) Create(ctx context.Context, color *domain.Color) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Color.Create",
		trace.WithAttributes(
			attribute.String("color.name", color.Name),
			attribute.String("color.hex_code", color.HexCode),
		),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.Create(ctx, color); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("color.id", int(color.ID)))
	return nil
}

func (r *ColorRepositoryWithTracing) FindByID(ctx context.Context, id uint) (color *domain.Color, err error) {
	ctx, span := tracer.Start(ctx, "repository.Color.FindByID",
		trace.WithAttributes(attribute.Int("color.id", int(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindByID(ctx, id)
}

func (r *ColorRepositoryWithTracing) FindByName(ctx context.Context, name string) (color *domain.Color, err error) {
	ctx, span := tracer.Start(ctx, "repository.Color.FindByName",
		trace.WithAttributes(attribute.String("color.name", name)),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindByName(ctx, name)
}

func (r *ColorRepositoryWithTracing) FindAll(ctx context.Context) (colors []domain.Color, err error) {
	ctx, span := tracer.Start(ctx, "repository.Color.FindAll")
	defer func() { endSpan(span, err) }()

	colors, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(colors)))
	return colors, err
}

func (r *ColorRepositoryWithTracing) SeedDefaults(ctx context.Context, colors []domain.Color) (added int, err error) {
	ctx, span := tracer.Start(ctx, "repository.Color.SeedDefaults",
		trace.WithAttributes(attribute.Int("seed.candidates", len(colors))),
	)
	defer func() { endSpan(span, err) }()

	added, err = r.next.SeedDefaults(ctx, colors)
	span.SetAttributes(attribute.Int("seed.added", added))
	return added, err
}

// DescriptionRepositoryWithTracing wraps a DescriptionRepository with tracing
type DescriptionRepositoryWithTracing struct {
	next domain.DescriptionRepository
}

// NewDescriptionRepositoryWithTracing creates a new description repository with tracing
func NewDescriptionRepositoryWithTracing(next domain.DescriptionRepository) *DescriptionRepositoryWithTracing {
	return &DescriptionRepositoryWithTracing{next: next}
}

func (r *DescriptionRepositoryWithTracing) Create(ctx context.Context, description *domain.Description) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.Create",
		trace.WithAttributes(
			attribute.String("description.name", description.Name),
			attribute.Int("description.opening_stock", description.OpeningStock),
		),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.Create(ctx, description); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("description.id", int(description.ID)))
	return nil
}

func (r *DescriptionRepositoryWithTracing) FindByID(ctx context.Context, id uint) (description *domain.Description, err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.FindByID",
		trace.WithAttributes(attribute.Int("description.id", int(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindByID(ctx, id)
}

func (r *DescriptionRepositoryWithTracing) FindByName(ctx context.Context, name string) (description *domain.Description, err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.FindByName",
		trace.WithAttributes(attribute.String("description.name", name)),
	)
	defer func() { endSpan(span, err) }()

	return r.next.FindByName(ctx, name)
}

func (r *DescriptionRepositoryWithTracing) FindAll(ctx context.Context) (descriptions []domain.Description, err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.FindAll")
	defer func() { endSpan(span, err) }()

	descriptions, err = r.next.FindAll(ctx)
	span.SetAttributes(attribute.Int("result.count", len(descriptions)))
	return descriptions, err
}

func (r *DescriptionRepositoryWithTracing) Delete(ctx context.Context, id uint) (err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.Delete",
		trace.WithAttributes(attribute.Int("description.id", int(id))),
	)
	defer func() { endSpan(span, err) }()

	return r.next.Delete(ctx, id)
}

func (r *DescriptionRepositoryWithTracing) Count(ctx context.Context) (count int64, err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.Count")
	defer func() { endSpan(span, err) }()

	count, err = r.next.Count(ctx)
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, err
}

func (r *DescriptionRepositoryWithTracing) UpdateOpeningStocks(ctx context.Context, openings map[uint]int) (updated int, err error) {
	ctx, span := tracer.Start(ctx, "repository.Description.UpdateOpeningStocks",
		trace.WithAttributes(attribute.Int("rollover.candidates", len(openings))),
	)
	defer func() { endSpan(span, err) }()

	updated, err = r.next.UpdateOpeningStocks(ctx, openings)
	span.SetAttributes(attribute.Int("rollover.updated", updated))
	return updated, err
}

// StockEntryRepositoryWithTracing wraps a StockEntryRepository with tracing
type StockEntryRepositoryWithTracing struct {
	next domain.StockEntryRepository
}

// NewStockEntryRepositoryWithTracing creates a new stock entry repository with tracing
func NewStockEntryRepositoryWithTracing(next domain.StockEntryRepository) *StockEntryRepositoryWithTracing {
	return &StockEntryRepositoryWithTracing{next: next}
}

func (r *StockEntryRepositoryWithTracing) Create(ctx context.Context, entry *domain.StockEntry) (err error) {
	ctx, span := tracer.Start(ctx, "repository.StockEntry.Create",
		trace.WithAttributes(
			attribute.String("entry.date", entry.EntryDate.String()),
			attribute.Int("entry.description_id", int(entry.DescriptionID)),
			attribute.Int("entry.color_id", int(entry.ColorID)),
			attribute.Int("entry.purchase_qty", entry.PurchaseQty),
			attribute.Int("entry.usage_qty", entry.UsageQty),
		),
	)
	defer func() { endSpan(span, err) }()

	if err = r.next.Create(ctx, entry); err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("entry.id", int(entry.ID)))
	return nil
}

func (r *StockEntryRepositoryWithTracing) FindInPeriod(ctx context.Context, from, to domain.Date) (entries []domain.StockEntry, err error) {
	ctx, span := tracer.Start(ctx, "repository.StockEntry.FindInPeriod",
		trace.WithAttributes(
			attribute.String("period.from", from.String()),
			attribute.String("period.to", to.String()),
		),
	)
	defer func() { endSpan(span, err) }()

	entries, err = r.next.FindInPeriod(ctx, from, to)
	span.SetAttributes(attribute.Int("result.count", len(entries)))
	return entries, err
}
