package query

import (
	"context"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// ListDescriptionsHandler handles list descriptions query
type ListDescriptionsHandler struct {
	repo domain.DescriptionRepository
}

// NewListDescriptionsHandler creates a new list descriptions handler
func NewListDescriptionsHandler(repo domain.DescriptionRepository) *ListDescriptionsHandler {
	return &ListDescriptionsHandler{repo: repo}
}

// Handle returns all descriptions ordered by id
func (h *ListDescriptionsHandler) Handle(ctx context.Context) ([]domain.Description, error) {
	descriptions, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list descriptions: %w", err)
	}
	if descriptions == nil {
		descriptions = []domain.Description{}
	}
	return descriptions, nil
}
