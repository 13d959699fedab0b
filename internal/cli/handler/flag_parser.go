// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/pastel/internal/models"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("--%s is required", flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ResolveCategory finds a category by id, or by name ignoring case.
// An empty ref resolves to the zero Category (no category).
func ResolveCategory(categories []models.Category, ref string) (models.Category, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Category{}, nil
	}
	if category, ok := models.FindCategory(categories, ref); ok {
		return category, nil
	}
	for _, category := range categories {
		if strings.EqualFold(category.Name, ref) {
			return category, nil
		}
	}
	return models.Category{}, fmt.Errorf("%w: %s", models.ErrCategoryNotFound, ref)
}
