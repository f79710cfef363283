package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// DeleteDescriptionCommand represents the command to delete a description
type DeleteDescriptionCommand struct {
	ID int64
}

// DeleteDescriptionHandler handles delete description command.
// Stock entries of the deleted description are kept.
type DeleteDescriptionHandler struct {
	repo domain.DescriptionRepository
}

// NewDeleteDescriptionHandler creates a new delete description handler
func NewDeleteDescriptionHandler(repo domain.DescriptionRepository) *DeleteDescriptionHandler {
	return &DeleteDescriptionHandler{repo: repo}
}

// Handle executes the delete description command
func (h *DeleteDescriptionHandler) Handle(ctx context.Context, cmd DeleteDescriptionCommand) error {
	if cmd.ID <= 0 {
		return domain.ErrDescriptionNotFound
	}
	if err := h.repo.Delete(ctx, uint(cmd.ID)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrDescriptionNotFound
		}
		return fmt.Errorf("failed to delete description: %w", err)
	}
	return nil
}
