package port

import (
	"context"

	"github.com/avolut/themectl/internal/domain/entity"
)

// ThemeLocator discovers installed themes on the local system.
type ThemeLocator interface {
	// Discover scans the theme search path and returns every theme found,
	// sorted by name.
	Discover(ctx context.Context) ([]entity.ThemeInfo, error)

	// Find returns the named theme. The lookup is case-insensitive on the
	// theme directory name.
	Find(ctx context.Context, name string) (entity.ThemeInfo, bool, error)
}
