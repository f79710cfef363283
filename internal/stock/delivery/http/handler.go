package http

import (
	"bytes"
	"context"
	"errors"
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/stock-tracker/internal/stock/domain"
	"github.com/tair/stock-tracker/internal/stock/export"
	"github.com/tair/stock-tracker/internal/stock/usecase/command"
	"github.com/tair/stock-tracker/internal/stock/usecase/query"
	"github.com/tair/stock-tracker/pkg/logger"
)

// StockHandler handles HTTP requests for the stock tracker using CQRS pattern
type StockHandler struct {
	// Command handlers
	createColorHandler       *command.CreateColorHandler
	createDescriptionHandler *command.CreateDescriptionHandler
	deleteDescriptionHandler *command.DeleteDescriptionHandler
	createEntryHandler       *command.CreateStockEntryHandler
	rolloverHandler          *command.RolloverOpeningStockHandler
	seedColorsHandler        *command.SeedColorsHandler

	// Query handlers
	listColorsHandler       *query.ListColorsHandler
	listDescriptionsHandler *query.ListDescriptionsHandler
	reportHandler           *query.MonthlyReportHandler

	descriptions domain.DescriptionRepository
	metrics      *Metrics
}

// NewStockHandler creates a new stock handler.
// This is used by Wire for automatic dependency injection
func NewStockHandler(
	createColorHandler *command.CreateColorHandler,
	createDescriptionHandler *command.CreateDescriptionHandler,
	deleteDescriptionHandler *command.DeleteDescriptionHandler,
	createEntryHandler *command.CreateStockEntryHandler,
	rolloverHandler *command.RolloverOpeningStockHandler,
	seedColorsHandler *command.SeedColorsHandler,
	listColorsHandler *query.ListColorsHandler,
	listDescriptionsHandler *query.ListDescriptionsHandler,
	reportHandler *query.MonthlyReportHandler,
	descriptions domain.DescriptionRepository,
	metrics *Metrics,
) *StockHandler {
	return &StockHandler{
		createColorHandler:       createColorHandler,
		createDescriptionHandler: createDescriptionHandler,
		deleteDescriptionHandler: deleteDescriptionHandler,
		createEntryHandler:       createEntryHandler,
		rolloverHandler:          rolloverHandler,
		seedColorsHandler:        seedColorsHandler,
		listColorsHandler:        listColorsHandler,
		listDescriptionsHandler:  listDescriptionsHandler,
		reportHandler:            reportHandler,
		descriptions:             descriptions,
		metrics:                  metrics,
	}
}

// RegisterRoutes registers all stock routes
func (h *StockHandler) RegisterRoutes(router *mux.Router) {
	// Start the gauge from the stored rows rather than zero.
	h.updateDescriptionsMetric(context.Background())

	m := h.metrics
	router.HandleFunc("/", m.instrument("/", h.Root)).Methods("GET")

	router.HandleFunc("/colors", m.instrument("/colors", h.ListColors)).Methods("GET")
	router.HandleFunc("/colors", m.instrument("/colors", h.CreateColor)).Methods("POST")

	router.HandleFunc("/descriptions", m.instrument("/descriptions", h.ListDescriptions)).Methods("GET")
	router.HandleFunc("/descriptions", m.instrument("/descriptions", h.CreateDescription)).Methods("POST")
	router.HandleFunc("/descriptions/{id}", m.instrument("/descriptions/{id}", h.DeleteDescription)).Methods("DELETE")

	router.HandleFunc("/stock", m.instrument("/stock", h.CreateStockEntry)).Methods("POST")
	router.HandleFunc("/stock/monthly/{year_month}", m.instrument("/stock/monthly/{year_month}", h.MonthlyReport)).Methods("GET")
	router.HandleFunc("/stock/monthly/{year_month}/excel", m.instrument("/stock/monthly/{year_month}/excel", h.MonthlyReportExcel)).Methods("GET")
	router.HandleFunc("/stock/update-opening-stock/{year_month}", m.instrument("/stock/update-opening-stock/{year_month}", h.RolloverOpeningStock)).Methods("POST")

	router.HandleFunc("/seed-data", m.instrument("/seed-data", h.SeedData)).Methods("POST")
}

// RegisterHealthCheck registers health check endpoint
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *StockHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			logger.Error(r.Context()).Err(err).Msg("Database ping failed")
			respondJSON(w, http.StatusServiceUnavailable, ErrorResponse{Detail: "Database unavailable"})
			return
		}
		respondJSON(w, http.StatusOK, MessageResponse{Message: "Stock service is healthy"})
	}).Methods("GET")
}

// Root godoc
// @Summary API status
// @Tags Health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *StockHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: "API is running"})
}

// ListColors godoc
// @Summary List colors
// @Description All colors ordered by id
// @Tags Colors
// @Produce json
// @Success 200 {array} domain.Color
// @Failure 500 {object} ErrorResponse
// @Router /colors [get]
func (h *StockHandler) ListColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.listColorsHandler.Handle(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to list colors")
		return
	}
	respondJSON(w, http.StatusOK, colors)
}

type createColorRequest struct {
	Name    string `json:"name" validate:"required,max=50" example:"White"`
	HexCode string `json:"hex_code" validate:"required,rgbhex" example:"#FFFFFF"`
}

// CreateColor godoc
// @Summary Create a color
// @Tags Colors
// @Accept json
// @Produce json
// @Param request body createColorRequest true "Color data"
// @Success 201 {object} domain.Color
// @Failure 400 {object} ErrorResponse "Color already exists"
// @Failure 422 {object} ErrorResponse
// @Router /colors [post]
func (h *StockHandler) CreateColor(w http.ResponseWriter, r *http.Request) {
	var req createColorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	color, err := h.createColorHandler.Handle(r.Context(), command.CreateColorCommand{
		Name:    req.Name,
		HexCode: req.HexCode,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create color")
		return
	}

	logger.Info(r.Context()).
		Uint("color_id", color.ID).
		Str("name", color.Name).
		Msg("Color created")
	respondJSON(w, http.StatusCreated, color)
}

// ListDescriptions godoc
// @Summary List descriptions
// @Description All descriptions ordered by id
// @Tags Descriptions
// @Produce json
// @Success 200 {array} domain.Description
// @Failure 500 {object} ErrorResponse
// @Router /descriptions [get]
func (h *StockHandler) ListDescriptions(w http.ResponseWriter, r *http.Request) {
	descriptions, err := h.listDescriptionsHandler.Handle(r.Context())
	if err != nil {
		respondError(w, r, err, "Failed to list descriptions")
		return
	}
	h.metrics.totalDescription.Set(float64(len(descriptions)))
	respondJSON(w, http.StatusOK, descriptions)
}

type createDescriptionRequest struct {
	Name         string `json:"name" validate:"required,max=255" example:"A4 Paper 80gsm"`
	OpeningStock int    `json:"opening_stock" example:"100"`
	Active       *bool  `json:"active" example:"true"`
}

// CreateDescription godoc
// @Summary Create a description
// @Tags Descriptions
// @Accept json
// @Produce json
// @Param request body createDescriptionRequest true "Description data"
// @Success 201 {object} domain.Description
// @Failure 400 {object} ErrorResponse "Description already exists"
// @Failure 422 {object} ErrorResponse
// @Router /descriptions [post]
func (h *StockHandler) CreateDescription(w http.ResponseWriter, r *http.Request) {
	var req createDescriptionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	description, err := h.createDescriptionHandler.Handle(r.Context(), command.CreateDescriptionCommand{
		Name:         req.Name,
		OpeningStock: req.OpeningStock,
		Active:       req.Active,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create description")
		return
	}

	h.updateDescriptionsMetric(r.Context())
	respondJSON(w, http.StatusCreated, description)
}

// DeleteDescription godoc
// @Summary Delete a description
// @Description Stock entries of the description are kept
// @Tags Descriptions
// @Param id path int true "Description ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /descriptions/{id} [delete]
func (h *StockHandler) DeleteDescription(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		// An integer too large for any row.
		respondError(w, r, domain.ErrDescriptionNotFound, "Failed to delete description")
		return
	}
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Detail: "Invalid description ID"})
		return
	}

	if err := h.deleteDescriptionHandler.Handle(r.Context(), command.DeleteDescriptionCommand{ID: id}); err != nil {
		respondError(w, r, err, "Failed to delete description")
		return
	}

	logger.Info(r.Context()).Int64("description_id", id).Msg("Description deleted")
	h.updateDescriptionsMetric(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

type createStockEntryRequest struct {
	EntryDate     domain.Date `json:"entry_date" swaggertype:"string" example:"2024-01-05"`
	DescriptionID int64       `json:"description_id" example:"1"`
	ColorID       int64       `json:"color_id" example:"1"`
	PurchaseQty   int         `json:"purchase_qty" validate:"min=0" example:"20"`
	UsageQty      int         `json:"usage_qty" validate:"min=0" example:"0"`
	Reason        *string     `json:"reason" validate:"omitempty,max=255"`
}

// CreateStockEntry godoc
// @Summary Record a stock entry
// @Description Records a purchase and/or usage of a description in a color on a day
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body createStockEntryRequest true "Stock entry data"
// @Success 201 {object} domain.StockEntry
// @Failure 404 {object} ErrorResponse "Description or color not found"
// @Failure 422 {object} ErrorResponse
// @Router /stock [post]
func (h *StockHandler) CreateStockEntry(w http.ResponseWriter, r *http.Request) {
	var req createStockEntryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.createEntryHandler.Handle(r.Context(), command.CreateStockEntryCommand{
		EntryDate:     req.EntryDate,
		DescriptionID: req.DescriptionID,
		ColorID:       req.ColorID,
		PurchaseQty:   req.PurchaseQty,
		UsageQty:      req.UsageQty,
		Reason:        req.Reason,
	})
	if err != nil {
		respondError(w, r, err, "Failed to create stock entry")
		return
	}

	h.metrics.recordEntry(entry.PurchaseQty, entry.UsageQty)
	logger.Info(r.Context()).
		Uint("entry_id", entry.ID).
		Uint("description_id", entry.DescriptionID).
		Int("purchase_qty", entry.PurchaseQty).
		Int("usage_qty", entry.UsageQty).
		Msg("Stock entry recorded")
	respondJSON(w, http.StatusCreated, entry)
}

// MonthlyReport godoc
// @Summary Monthly stock report
// @Description Per-description ledger with 31 daily purchase and usage columns
// @Tags Stock
// @Produce json
// @Param year_month path string true "Period as YYYY-MM"
// @Success 200 {object} domain.MonthlyReport
// @Failure 400 {object} ErrorResponse
// @Router /stock/monthly/{year_month} [get]
func (h *StockHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportHandler.Handle(r.Context(), query.MonthlyReportQuery{YearMonth: mux.Vars(r)["year_month"]})
	if err != nil {
		respondError(w, r, err, "Failed to build monthly report")
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// MonthlyReportExcel godoc
// @Summary Monthly stock report workbook
// @Description The monthly report as an xlsx workbook with All Stock, Purchase and Usage sheets
// @Tags Stock
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param year_month path string true "Period as YYYY-MM"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Router /stock/monthly/{year_month}/excel [get]
func (h *StockHandler) MonthlyReportExcel(w http.ResponseWriter, r *http.Request) {
	yearMonth := mux.Vars(r)["year_month"]
	report, err := h.reportHandler.Handle(r.Context(), query.MonthlyReportQuery{YearMonth: yearMonth})
	if err != nil {
		respondError(w, r, err, "Failed to build monthly report")
		return
	}

	var buf bytes.Buffer
	if err := export.WriteMonthlyReport(&buf, report); err != nil {
		respondError(w, r, err, "Failed to render monthly workbook")
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(yearMonth)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to send monthly workbook")
	}
}

// RolloverOpeningStock godoc
// @Summary Roll opening stock forward
// @Description Sets each description's opening stock to its closing stock for the month
// @Tags Stock
// @Produce json
// @Param year_month path string true "Period as YYYY-MM"
// @Success 200 {object} command.RolloverResult
// @Failure 400 {object} ErrorResponse
// @Router /stock/update-opening-stock/{year_month} [post]
func (h *StockHandler) RolloverOpeningStock(w http.ResponseWriter, r *http.Request) {
	yearMonth := mux.Vars(r)["year_month"]
	result, err := h.rolloverHandler.Handle(r.Context(), command.RolloverOpeningStockCommand{YearMonth: yearMonth})
	if err != nil {
		respondError(w, r, err, "Failed to roll over opening stock")
		return
	}

	h.metrics.rollovers.Inc()
	logger.Info(r.Context()).
		Str("year_month", yearMonth).
		Int("updated", result.Updated).
		Msg("Opening stock rolled over")
	respondJSON(w, http.StatusOK, result)
}

// SeedResponse is the result of seeding default colors.
type SeedResponse struct {
	Message string `json:"message"`
	Added   int    `json:"added"`
}

// SeedData godoc
// @Summary Seed default colors
// @Description Adds the default color palette, skipping names that already exist
// @Tags Colors
// @Produce json
// @Success 200 {object} SeedResponse
// @Failure 500 {object} object{error=string}
// @Router /seed-data [post]
func (h *StockHandler) SeedData(w http.ResponseWriter, r *http.Request) {
	added, err := h.seedColorsHandler.Handle(r.Context())
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to seed colors")
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	logger.Info(r.Context()).Int("added", added).Msg("Seed colors done")
	respondJSON(w, http.StatusOK, SeedResponse{Message: "Seed colors done", Added: added})
}

func (h *StockHandler) updateDescriptionsMetric(ctx context.Context) {
	count, err := h.descriptions.Count(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to count descriptions")
		return
	}
	h.metrics.totalDescription.Set(float64(count))
}
