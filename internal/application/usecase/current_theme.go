package usecase

import (
	"context"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/logging"
)

// CurrentThemeUseCase reports the active theme per toolkit. The snapshot is
// assembled on demand from each handler; nothing is cached, so it cannot go
// stale.
type CurrentThemeUseCase struct {
	handlers []port.Handler
}

// NewCurrentThemeUseCase creates a new CurrentThemeUseCase.
func NewCurrentThemeUseCase(handlers []port.Handler) *CurrentThemeUseCase {
	return &CurrentThemeUseCase{handlers: handlers}
}

// Execute queries every available handler. Handlers that cannot report are
// left out of the snapshot rather than failing the whole call.
func (uc *CurrentThemeUseCase) Execute(ctx context.Context) (entity.CurrentThemeSnapshot, error) {
	log := logging.FromContext(ctx)

	snapshot := entity.CurrentThemeSnapshot{
		Themes: make(map[entity.ToolkitID]string),
	}
	for _, h := range uc.handlers {
		if !h.IsAvailable() {
			continue
		}
		name, err := h.CurrentTheme(ctx)
		if err != nil {
			log.Debug().Str("toolkit", h.Toolkit().String()).Err(err).
				Msg("handler could not report current theme")
			continue
		}
		snapshot.Themes[h.Toolkit()] = name
	}
	return snapshot, nil
}
