package command

import (
	"context"
	"errors"
	"sort"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

var errStore = errors.New("store unavailable")

type stubColorRepo struct {
	colors    []domain.Color
	createErr error
	seedErr   error
}

func (r *stubColorRepo) Create(_ context.Context, c *domain.Color) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = uint(len(r.colors) + 1)
	r.colors = append(r.colors, *c)
	return nil
}

func (r *stubColorRepo) FindByID(_ context.Context, id uint) (*domain.Color, error) {
	for _, c := range r.colors {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubColorRepo) FindByName(_ context.Context, name string) (*domain.Color, error) {
	for _, c := range r.colors {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubColorRepo) FindAll(context.Context) ([]domain.Color, error) {
	return r.colors, nil
}

func (r *stubColorRepo) SeedDefaults(ctx context.Context, colors []domain.Color) (int, error) {
	if r.seedErr != nil {
		return 0, r.seedErr
	}
	added := 0
	for _, c := range colors {
		if _, err := r.FindByName(ctx, c.Name); err == nil {
			continue
		}
		if err := r.Create(ctx, &c); err != nil {
			return 0, err
		}
		added++
	}
	return added, nil
}

type stubDescriptionRepo struct {
	descriptions []domain.Description
	nextID       uint
	createErr    error
	findErr      error
}

func (r *stubDescriptionRepo) Create(_ context.Context, d *domain.Description) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	d.ID = r.nextID
	r.descriptions = append(r.descriptions, *d)
	return nil
}

func (r *stubDescriptionRepo) FindByID(_ context.Context, id uint) (*domain.Description, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, d := range r.descriptions {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubDescriptionRepo) FindByName(_ context.Context, name string) (*domain.Description, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, d := range r.descriptions {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubDescriptionRepo) FindAll(context.Context) ([]domain.Description, error) {
	out := append([]domain.Description(nil), r.descriptions...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubDescriptionRepo) Delete(_ context.Context, id uint) error {
	for i, d := range r.descriptions {
		if d.ID == id {
			r.descriptions = append(r.descriptions[:i], r.descriptions[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubDescriptionRepo) Count(context.Context) (int64, error) {
	return int64(len(r.descriptions)), nil
}

func (r *stubDescriptionRepo) UpdateOpeningStocks(_ context.Context, openings map[uint]int) (int, error) {
	updated := 0
	for i := range r.descriptions {
		if v, ok := openings[r.descriptions[i].ID]; ok {
			r.descriptions[i].OpeningStock = v
			updated++
		}
	}
	return updated, nil
}

type stubEntryRepo struct {
	entries []domain.StockEntry
}

func (r *stubEntryRepo) Create(_ context.Context, e *domain.StockEntry) error {
	e.ID = uint(len(r.entries) + 1)
	r.entries = append(r.entries, *e)
	return nil
}

func (r *stubEntryRepo) FindInPeriod(_ context.Context, from, to domain.Date) ([]domain.StockEntry, error) {
	var out []domain.StockEntry
	for _, e := range r.entries {
		if !e.EntryDate.Before(from.Time) && e.EntryDate.Before(to.Time) {
			out = append(out, e)
		}
	}
	return out, nil
}

type recordingPublisher struct {
	entries   []uint
	rollovers []string
	err       error
}

func (p *recordingPublisher) PublishStockEntryRecorded(_ context.Context, e *domain.StockEntry) error {
	p.entries = append(p.entries, e.ID)
	return p.err
}

func (p *recordingPublisher) PublishOpeningStockRolledOver(_ context.Context, ym string, _ int) error {
	p.rollovers = append(p.rollovers, ym)
	return p.err
}
