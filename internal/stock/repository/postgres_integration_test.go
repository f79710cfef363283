//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/pkg/database"
)

func newPostgresDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("stock_test"),
		tcPostgres.WithUsername("stock"),
		tcPostgres.WithPassword("stock"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewGormConnection(database.Config{URL: pgURL})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestPostgresRepositories(t *testing.T) {
	ctx := context.Background()
	db := newPostgresDB(t)

	colors := NewGormColorRepository(db)
	descriptions := NewGormDescriptionRepository(db)
	entries := NewGormStockEntryRepository(db)

	added, err := colors.SeedDefaults(ctx, domain.DefaultColors)
	require.NoError(t, err)
	assert.Equal(t, len(domain.DefaultColors), added)

	added, err = colors.SeedDefaults(ctx, domain.DefaultColors)
	require.NoError(t, err)
	assert.Zero(t, added)

	err = colors.Create(ctx, &domain.Color{Name: domain.DefaultColors[0].Name, HexCode: "#000000"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	paper := &domain.Description{Name: "A4 Paper 80gsm", OpeningStock: 100, Active: true}
	require.NoError(t, descriptions.Create(ctx, paper))
	assert.ErrorIs(t, descriptions.Create(ctx, &domain.Description{Name: "A4 Paper 80gsm", Active: true}), domain.ErrConflict)

	white, err := colors.FindByName(ctx, domain.DefaultColors[0].Name)
	require.NoError(t, err)

	for _, day := range []int{1, 31} {
		require.NoError(t, entries.Create(ctx, &domain.StockEntry{
			EntryDate:     domain.NewDate(2024, time.January, day),
			DescriptionID: paper.ID,
			ColorID:       white.ID,
			PurchaseQty:   day,
		}))
	}
	require.NoError(t, entries.Create(ctx, &domain.StockEntry{
		EntryDate:     domain.NewDate(2024, time.February, 1),
		DescriptionID: paper.ID,
		ColorID:       white.ID,
		UsageQty:      5,
	}))

	found, err := entries.FindInPeriod(ctx, domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "2024-01-01", found[0].EntryDate.String())
	assert.Equal(t, "2024-01-31", found[1].EntryDate.String())

	updated, err := descriptions.UpdateOpeningStocks(ctx, map[uint]int{paper.ID: 132, 9999: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, updated)

	reloaded, err := descriptions.FindByID(ctx, paper.ID)
	require.NoError(t, err)
	assert.Equal(t, 132, reloaded.OpeningStock)

	require.NoError(t, descriptions.Delete(ctx, paper.ID))
	assert.ErrorIs(t, descriptions.Delete(ctx, paper.ID), domain.ErrNotFound)
}
