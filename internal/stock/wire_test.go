package stock

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/repository"
	"github.com/tair/stock-tracker/pkg/database"
)

func TestInitializeHTTPHandler(t *testing.T) {
	db, err := database.NewGormConnection(database.Config{URL: "file:TestInitializeHTTPHandler?mode=memory&cache=shared"})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	registry := prometheus.NewRegistry()
	handler, err := InitializeHTTPHandler(db, domain.NoopPublisher{}, registry)
	require.NoError(t, err)

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/seed-data", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/descriptions", strings.NewReader(`{"name":"A4 Paper"}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	families, err := registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "stock_service_requests_total")
	assert.Contains(t, names, "stock_service_total_descriptions")
}
