package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
)

// FlatpakHandler propagates the GTK theme into Flatpak sandboxes via
// per-user overrides: sandboxed apps get read access to the host theme
// directories and a GTK_THEME environment hint.
type FlatpakHandler struct {
	runner  CommandRunner
	dataDir string // e.g. ~/.local/share
}

// NewFlatpakHandler creates the Flatpak handler.
func NewFlatpakHandler(runner CommandRunner, dataDir string) *FlatpakHandler {
	return &FlatpakHandler{runner: runner, dataDir: dataDir}
}

// Toolkit implements port.Handler.
func (h *FlatpakHandler) Toolkit() entity.ToolkitID {
	return entity.ToolkitFlatpak
}

// IsAvailable implements port.Handler.
func (h *FlatpakHandler) IsAvailable() bool {
	return h.runner.LookPath("flatpak")
}

// Targets implements port.Handler. flatpak override --user writes the
// global overrides file.
func (h *FlatpakHandler) Targets() []string {
	return []string{
		filepath.Join(h.dataDir, "flatpak", "overrides", "global"),
	}
}

// ApplyTheme implements port.Handler.
func (h *FlatpakHandler) ApplyTheme(ctx context.Context, data entity.ThemeData) entity.HandlerResult {
	fail := func(err error) entity.HandlerResult {
		return entity.HandlerResult{
			Toolkit: h.Toolkit(),
			Success: false,
			Message: "Flatpak override failed",
			Err:     err,
		}
	}

	// Sandboxes need to see the host theme files to render them.
	for _, fs := range []string{"~/.themes:ro", "xdg-data/themes:ro"} {
		if _, err := h.runner.Run(ctx, "flatpak", "override", "--user", "--filesystem="+fs); err != nil {
			return fail(fmt.Errorf("grant filesystem %s: %w", fs, err))
		}
	}
	if _, err := h.runner.Run(ctx, "flatpak", "override", "--user", "--env=GTK_THEME="+data.ThemeName); err != nil {
		return fail(fmt.Errorf("set GTK_THEME: %w", err))
	}

	return entity.HandlerResult{
		Toolkit: h.Toolkit(),
		Success: true,
		Message: fmt.Sprintf("Flatpak apps overridden to %s", data.ThemeName),
	}
}

// CurrentTheme implements port.Handler, parsing GTK_THEME out of the active
// override set.
func (h *FlatpakHandler) CurrentTheme(ctx context.Context) (string, error) {
	out, err := h.runner.Run(ctx, "flatpak", "override", "--user", "--show")
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "GTK_THEME="); ok {
			return after, nil
		}
	}
	return "", fmt.Errorf("no GTK_THEME override set")
}

var _ port.Handler = (*FlatpakHandler)(nil)
