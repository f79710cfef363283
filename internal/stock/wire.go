//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tair/stock-tracker/internal/stock/delivery/http"
	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/usecase/command"
	"github.com/tair/stock-tracker/internal/stock/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideColorRepository,
	ProvideDescriptionRepository,
	ProvideStockEntryRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreateColorHandler,
	command.NewCreateDescriptionHandler,
	command.NewDeleteDescriptionHandler,
	command.NewCreateStockEntryHandler,
	command.NewRolloverOpeningStockHandler,
	command.NewSeedColorsHandler,
)

var QuerySet = wire.NewSet(
	query.NewListColorsHandler,
	query.NewListDescriptionsHandler,
	query.NewMonthlyReportHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher domain.EventPublisher, registerer prometheus.Registerer) (*http.StockHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewMetrics,
		http.NewStockHandler,
	)
	return nil, nil
}
