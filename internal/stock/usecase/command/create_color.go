package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tair/stock-tracker/internal/stock/domain"
)

// CreateColorCommand represents the command to create a color
type CreateColorCommand struct {
	Name    string
	HexCode string
}

// CreateColorHandler handles create color command
type CreateColorHandler struct {
	repo domain.ColorRepository
}

// NewCreateColorHandler creates a new create color handler
func NewCreateColorHandler(repo domain.ColorRepository) *CreateColorHandler {
	return &CreateColorHandler{repo: repo}
}

// Handle executes the create color command
func (h *CreateColorHandler) Handle(ctx context.Context, cmd CreateColorCommand) (*domain.Color, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, domain.NewError(domain.ErrValidation, "name is required")
	}
	if utf8.RuneCountInString(name) > 50 {
		return nil, domain.NewError(domain.ErrValidation, "name must be at most 50 characters")
	}
	if !domain.HexCodePattern.MatchString(cmd.HexCode) {
		return nil, domain.NewError(domain.ErrValidation, "hex_code must match #RRGGBB")
	}

	_, err := h.repo.FindByName(ctx, name)
	switch {
	case err == nil:
		return nil, domain.ErrColorExists
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("failed to check color name: %w", err)
	}

	color := &domain.Color{
		Name:    name,
		HexCode: strings.ToUpper(cmd.HexCode),
	}
	if err := h.repo.Create(ctx, color); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.ErrColorExists
		}
		return nil, fmt.Errorf("failed to create color: %w", err)
	}

	return color, nil
}
