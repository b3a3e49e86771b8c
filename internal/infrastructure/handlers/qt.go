package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
)

// qtPaletteOrder is the QPalette role order qt5ct/qt6ct expect in the
// active_colors list.
var qtPaletteOrder = []string{
	"WindowText", "Button", "Light", "Midlight", "Dark", "Mid",
	"Text", "BrightText", "ButtonText", "Base", "Window", "Shadow",
	"Highlight", "HighlightedText", "Link", "LinkVisited",
	"AlternateBase", "ToolTipBase", "ToolTipText", "PlaceholderText",
}

// qtDefaults completes the palette for roles the schema cannot fill.
var qtDefaults = map[string]string{
	"WindowText":      "#ffffff",
	"Button":          "#31363b",
	"Light":           "#40464c",
	"Midlight":        "#363b40",
	"Dark":            "#191d21",
	"Mid":             "#25292d",
	"Text":            "#ffffff",
	"BrightText":      "#ff5555",
	"ButtonText":      "#ffffff",
	"Base":            "#232629",
	"Window":          "#2a2e32",
	"Shadow":          "#121517",
	"Highlight":       "#3daee9",
	"HighlightedText": "#ffffff",
	"Link":            "#2980b9",
	"LinkVisited":     "#7f8c8d",
	"AlternateBase":   "#31363b",
	"ToolTipBase":     "#31363b",
	"ToolTipText":     "#ffffff",
	"PlaceholderText": "#7f8c8d",
}

const qtSchemeFile = "themectl.conf"

// QtHandler writes a qt5ct/qt6ct color scheme and points both tools at it.
type QtHandler struct {
	configDir string // e.g. ~/.config
}

// NewQtHandler creates the Qt handler rooted at the user config directory.
func NewQtHandler(configDir string) *QtHandler {
	return &QtHandler{configDir: configDir}
}

// Toolkit implements port.Handler.
func (h *QtHandler) Toolkit() entity.ToolkitID {
	return entity.ToolkitQt
}

// IsAvailable implements port.Handler. The handler is useful as soon as
// either qt5ct or qt6ct has a config directory.
func (h *QtHandler) IsAvailable() bool {
	for _, tool := range []string{"qt5ct", "qt6ct"} {
		if st, err := os.Stat(filepath.Join(h.configDir, tool)); err == nil && st.IsDir() {
			return true
		}
	}
	return false
}

// Targets implements port.Handler. Scheme files carry a fixed name so the
// backup set is known before the theme is.
func (h *QtHandler) Targets() []string {
	var targets []string
	for _, tool := range []string{"qt5ct", "qt6ct"} {
		targets = append(targets,
			filepath.Join(h.configDir, tool, tool+".conf"),
			filepath.Join(h.configDir, tool, "colors", qtSchemeFile),
		)
	}
	return targets
}

// ApplyTheme implements port.Handler.
func (h *QtHandler) ApplyTheme(ctx context.Context, data entity.ThemeData) entity.HandlerResult {
	fail := func(err error) entity.HandlerResult {
		return entity.HandlerResult{
			Toolkit: h.Toolkit(),
			Success: false,
			Message: "Qt theme application failed",
			Err:     err,
		}
	}

	applied := 0
	for _, tool := range []string{"qt5ct", "qt6ct"} {
		toolDir := filepath.Join(h.configDir, tool)
		if st, err := os.Stat(toolDir); err != nil || !st.IsDir() {
			continue
		}

		schemePath := filepath.Join(toolDir, "colors", qtSchemeFile)
		if err := h.writeScheme(schemePath, data); err != nil {
			return fail(err)
		}
		if err := h.pointConfigAt(filepath.Join(toolDir, tool+".conf"), schemePath); err != nil {
			return fail(err)
		}
		applied++
	}

	if applied == 0 {
		return fail(fmt.Errorf("neither qt5ct nor qt6ct is configured under %s", h.configDir))
	}
	return entity.HandlerResult{
		Toolkit: h.Toolkit(),
		Success: true,
		Message: fmt.Sprintf("Qt color scheme set to %s", data.ThemeName),
	}
}

// writeScheme emits the [ColorScheme] section in qt5ct's format: one
// comma-separated palette per widget state, roles in qtPaletteOrder,
// defaults filling roles the theme does not cover.
func (h *QtHandler) writeScheme(path string, data entity.ThemeData) error {
	palette := make([]string, 0, len(qtPaletteOrder))
	for _, role := range qtPaletteOrder {
		if v, ok := data.Colors[role]; ok {
			palette = append(palette, v.Hex())
			continue
		}
		palette = append(palette, qtDefaults[role])
	}

	disabled := make([]string, 0, len(qtPaletteOrder))
	for i, role := range qtPaletteOrder {
		v, err := color.Parse(palette[i])
		if err != nil {
			return fmt.Errorf("default palette entry %s: %w", role, err)
		}
		disabled = append(disabled, v.Darken(0.15).Hex())
	}

	cfg := ini.Empty()
	general := cfg.Section("General")
	general.Key("theme").SetValue(data.ThemeName)

	scheme := cfg.Section("ColorScheme")
	scheme.Key("active_colors").SetValue(strings.Join(palette, ", "))
	scheme.Key("inactive_colors").SetValue(strings.Join(palette, ", "))
	scheme.Key("disabled_colors").SetValue(strings.Join(disabled, ", "))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return cfg.SaveTo(path)
}

// pointConfigAt updates the tool's main config to use our scheme.
func (h *QtHandler) pointConfigAt(confPath, schemePath string) error {
	cfg, err := ini.LooseLoad(confPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", confPath, err)
	}
	appearance := cfg.Section("Appearance")
	appearance.Key("custom_palette").SetValue("true")
	appearance.Key("color_scheme_path").SetValue(schemePath)

	if err := os.MkdirAll(filepath.Dir(confPath), 0o755); err != nil {
		return err
	}
	return cfg.SaveTo(confPath)
}

// CurrentTheme implements port.Handler. The theme name travels inside the
// scheme file we write; a scheme from another tool reports its file name.
func (h *QtHandler) CurrentTheme(ctx context.Context) (string, error) {
	for _, tool := range []string{"qt5ct", "qt6ct"} {
		confPath := filepath.Join(h.configDir, tool, tool+".conf")
		cfg, err := ini.Load(confPath)
		if err != nil {
			continue
		}
		schemePath := cfg.Section("Appearance").Key("color_scheme_path").String()
		if schemePath == "" {
			continue
		}
		if scheme, err := ini.Load(schemePath); err == nil {
			if name := scheme.Section("General").Key("theme").String(); name != "" {
				return name, nil
			}
		}
		return strings.TrimSuffix(filepath.Base(schemePath), ".conf"), nil
	}
	return "", fmt.Errorf("no qt5ct or qt6ct color scheme configured")
}

var _ port.Handler = (*QtHandler)(nil)
