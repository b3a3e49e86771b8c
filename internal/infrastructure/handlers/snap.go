package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
)

// themesSnap provides the shared GTK theme content snaps consume.
const themesSnap = "gtk-common-themes"

// SnapHandler wires snap applications to the session theme. Snaps read GTK
// settings through the desktop portal, so the handler's job is making sure
// the gtk-common-themes content snap is present and its theme slots are
// connected; the GTK handler has already switched the session theme itself.
type SnapHandler struct {
	runner CommandRunner
}

// NewSnapHandler creates the Snap handler.
func NewSnapHandler(runner CommandRunner) *SnapHandler {
	return &SnapHandler{runner: runner}
}

// Toolkit implements port.Handler.
func (h *SnapHandler) Toolkit() entity.ToolkitID {
	return entity.ToolkitSnap
}

// IsAvailable implements port.Handler.
func (h *SnapHandler) IsAvailable() bool {
	return h.runner.LookPath("snap")
}

// Targets implements port.Handler. Snap theming is subprocess-only; there is
// no user file to back up.
func (h *SnapHandler) Targets() []string {
	return nil
}

// ApplyTheme implements port.Handler.
func (h *SnapHandler) ApplyTheme(ctx context.Context, data entity.ThemeData) entity.HandlerResult {
	fail := func(err error) entity.HandlerResult {
		return entity.HandlerResult{
			Toolkit: h.Toolkit(),
			Success: false,
			Message: "Snap theme plumbing failed",
			Err:     err,
		}
	}

	if _, err := h.runner.Run(ctx, "snap", "list", themesSnap); err != nil {
		return fail(fmt.Errorf("%s is not installed: %w", themesSnap, err))
	}

	// Reconnect any disconnected theme slots. Snapd auto-connects these on
	// install; after a manual disconnect the themes stop propagating.
	out, err := h.runner.Run(ctx, "snap", "connections", themesSnap)
	if err != nil {
		return fail(fmt.Errorf("query connections: %w", err))
	}
	for _, plug := range disconnectedThemePlugs(out) {
		if _, err := h.runner.Run(ctx, "snap", "connect", plug); err != nil {
			return fail(fmt.Errorf("connect %s: %w", plug, err))
		}
	}

	return entity.HandlerResult{
		Toolkit: h.Toolkit(),
		Success: true,
		Message: fmt.Sprintf("snap theme slots connected for %s", data.ThemeName),
	}
}

// disconnectedThemePlugs parses `snap connections` output and returns plugs
// of theme interfaces with no connected slot (marked "-").
func disconnectedThemePlugs(out string) []string {
	var plugs []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		iface, plug, slot := fields[0], fields[1], fields[2]
		if !strings.Contains(iface, "themes") && !strings.Contains(iface, "content") {
			continue
		}
		if slot == "-" && plug != "-" {
			plugs = append(plugs, plug)
		}
	}
	return plugs
}

// CurrentTheme implements port.Handler. Snaps follow the session GTK theme.
func (h *SnapHandler) CurrentTheme(ctx context.Context) (string, error) {
	out, err := h.runner.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "'\""), nil
}

var _ port.Handler = (*SnapHandler)(nil)
