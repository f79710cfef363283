package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// CreateDescriptionCommand represents the command to create a description
type CreateDescriptionCommand struct {
	Name         string
	OpeningStock int
	// Active defaults to true when nil.
	Active *bool
}

// CreateDescriptionHandler handles create description command
type CreateDescriptionHandler struct {
	repo domain.DescriptionRepository
}

// NewCreateDescriptionHandler creates a new create description handler
func NewCreateDescriptionHandler(repo domain.DescriptionRepository) *CreateDescriptionHandler {
	return &CreateDescriptionHandler{repo: repo}
}

// Handle executes the create description command
func (h *CreateDescriptionHandler) Handle(ctx context.Context, cmd CreateDescriptionCommand) (*domain.Description, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, domain.NewError(domain.ErrValidation, "name is required")
	}
	if utf8.RuneCountInString(name) > 255 {
		return nil, domain.NewError(domain.ErrValidation, "name must be at most 255 characters")
	}

	_, err := h.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domain.ErrDescriptionExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check description name: %w", err)
	}

	active := true
	if cmd.Active != nil {
		active = *cmd.Active
	}

	description := &domain.Description{
		Name:         name,
		OpeningStock: cmd.OpeningStock,
		Active:       active,
	}
	if err := h.repo.Create(ctx, description); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrDescriptionExists
		}
		return nil, fmt.Errorf("failed to create description: %w", err)
	}

	return description, nil
}
