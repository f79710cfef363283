package domain

import (
	"context"
	"regexp"
)

// HexCodePattern matches a #RRGGBB display color.
var HexCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Color is a color variant applied to stock entries.
type Color struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"size:50;not null;uniqueIndex"`
	HexCode string `json:"hex_code" gorm:"size:7;not null"`
}

// TableName specifies the table name
func (Color) TableName() string {
	return "colors"
}

// DefaultColors is the palette installed by the seed operation.
var DefaultColors = []Color{
	{Name: "White", HexCode: "#FFFFFF"},
	{Name: "Pink", HexCode: "#FFB6C1"},
	{Name: "Yellow", HexCode: "#FFFF00"},
	{Name: "Blue", HexCode: "#0000FF"},
	{Name: "Green", HexCode: "#008000"},
	{Name: "Red", HexCode: "#FF0000"},
	{Name: "Orange", HexCode: "#FFA500"},
	{Name: "Purple", HexCode: "#800080"},
	{Name: "Brown", HexCode: "#8B4513"},
	{Name: "Gray", HexCode: "#808080"},
}

// ColorRepository defines the contract for color data access
type ColorRepository interface {
	Create(ctx context.Context, color *Color) error
	FindByID(ctx context.Context, id uint) (*Color, error)
	FindByName(ctx context.Context, name string) (*Color, error)
	FindAll(ctx context.Context) ([]Color, error)
	// SeedDefaults inserts the colors whose names are not taken yet, atomically,
	// and returns the number added.
	SeedDefaults(ctx context.Context, colors []Color) (int, error)
}
