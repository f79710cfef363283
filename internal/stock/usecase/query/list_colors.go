package query

import (
	"context"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// ListColorsHandler handles list colors query
type ListColorsHandler struct {
	repo domain.ColorRepository
}

// NewListColorsHandler creates a new list colors handler
func NewListColorsHandler(repo domain.ColorRepository) *ListColorsHandler {
	return &ListColorsHandler{repo: repo}
}

// Handle returns all colors ordered by id
func (h *ListColorsHandler) Handle(ctx context.Context) ([]domain.Color, error) {
	colors, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	if colors == nil {
		colors = []domain.Color{}
	}
	return colors, nil
}
