package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
)

// gtkDefaults fills native variables a theme leaves unset. Handlers own
// their defaults; the translator never invents colors.
var gtkDefaults = map[string]string{
	"theme_bg_color":          "#242424",
	"theme_fg_color":          "#ffffff",
	"theme_base_color":        "#1e1e1e",
	"theme_selected_bg_color": "#3584e4",
	"theme_selected_fg_color": "#ffffff",
	"borders":                 "#3b3b3b",
}

// GTKHandler writes GTK3/GTK4 user CSS and switches the active theme via
// gsettings.
type GTKHandler struct {
	runner    CommandRunner
	configDir string // e.g. ~/.config
}

// NewGTKHandler creates the GTK handler rooted at the user config directory.
func NewGTKHandler(runner CommandRunner, configDir string) *GTKHandler {
	return &GTKHandler{runner: runner, configDir: configDir}
}

// Toolkit implements port.Handler.
func (h *GTKHandler) Toolkit() entity.ToolkitID {
	return entity.ToolkitGTK
}

// IsAvailable implements port.Handler. GTK theming needs gsettings to switch
// the active theme.
func (h *GTKHandler) IsAvailable() bool {
	return h.runner.LookPath("gsettings")
}

// Targets implements port.Handler.
func (h *GTKHandler) Targets() []string {
	return []string{
		filepath.Join(h.configDir, "gtk-3.0", "gtk.css"),
		filepath.Join(h.configDir, "gtk-3.0", "settings.ini"),
		filepath.Join(h.configDir, "gtk-4.0", "gtk.css"),
	}
}

// ApplyTheme implements port.Handler.
func (h *GTKHandler) ApplyTheme(ctx context.Context, data entity.ThemeData) entity.HandlerResult {
	fail := func(err error) entity.HandlerResult {
		return entity.HandlerResult{
			Toolkit: h.Toolkit(),
			Success: false,
			Message: "GTK theme application failed",
			Err:     err,
		}
	}

	css := renderDefineColors(data.Colors, gtkDefaults)
	for _, target := range []string{
		filepath.Join(h.configDir, "gtk-3.0", "gtk.css"),
		filepath.Join(h.configDir, "gtk-4.0", "gtk.css"),
	} {
		if err := writeFileMkdir(target, []byte(css)); err != nil {
			return fail(err)
		}
	}

	settings := fmt.Sprintf("[Settings]\ngtk-theme-name=%s\n", data.ThemeName)
	if err := writeFileMkdir(filepath.Join(h.configDir, "gtk-3.0", "settings.ini"), []byte(settings)); err != nil {
		return fail(err)
	}

	if _, err := h.runner.Run(ctx, "gsettings", "set",
		"org.gnome.desktop.interface", "gtk-theme", data.ThemeName); err != nil {
		return fail(fmt.Errorf("set gtk-theme: %w", err))
	}

	return entity.HandlerResult{
		Toolkit: h.Toolkit(),
		Success: true,
		Message: fmt.Sprintf("GTK theme set to %s", data.ThemeName),
	}
}

// CurrentTheme implements port.Handler.
func (h *GTKHandler) CurrentTheme(ctx context.Context) (string, error) {
	out, err := h.runner.Run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "'\""), nil
}

// renderDefineColors emits a deterministic @define-color block. Defaults
// cover variables the theme leaves unset; the output is sorted so repeated
// applies produce identical files.
func renderDefineColors(colors map[string]color.Value, defaults map[string]string) string {
	merged := make(map[string]string, len(colors)+len(defaults))
	for name, hex := range defaults {
		merged[name] = hex
	}
	for name, v := range colors {
		merged[name] = v.Hex()
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("/* Generated by themectl. Manual edits will be overwritten. */\n")
	for _, name := range names {
		fmt.Fprintf(&b, "@define-color %s %s;\n", name, merged[name])
	}
	return b.String()
}

func writeFileMkdir(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

var _ port.Handler = (*GTKHandler)(nil)
