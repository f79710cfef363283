package command

import (
	"context"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// SeedColorsHandler installs the default color palette
type SeedColorsHandler struct {
	repo domain.ColorRepository
}

// NewSeedColorsHandler creates a new seed colors handler
func NewSeedColorsHandler(repo domain.ColorRepository) *SeedColorsHandler {
	return &SeedColorsHandler{repo: repo}
}

// Handle adds every default color whose name is free and returns how many were added.
// Either all missing colors are added or none are.
func (h *SeedColorsHandler) Handle(ctx context.Context) (int, error) {
	added, err := h.repo.SeedDefaults(ctx, domain.DefaultColors)
	if err != nil {
		return 0, fmt.Errorf("failed to seed colors: %w", err)
	}
	return added, nil
}
