package usecase

import (
	"context"
	"fmt"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/logging"
)

// DiscoverThemesUseCase lists installed themes.
type DiscoverThemesUseCase struct {
	locator port.ThemeLocator
}

// NewDiscoverThemesUseCase creates a new DiscoverThemesUseCase.
func NewDiscoverThemesUseCase(locator port.ThemeLocator) *DiscoverThemesUseCase {
	return &DiscoverThemesUseCase{locator: locator}
}

// Execute scans the theme search path.
func (uc *DiscoverThemesUseCase) Execute(ctx context.Context) ([]entity.ThemeInfo, error) {
	themes, err := uc.locator.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("discover themes: %w", err)
	}

	logging.FromContext(ctx).Debug().Int("count", len(themes)).Msg("themes discovered")
	return themes, nil
}
