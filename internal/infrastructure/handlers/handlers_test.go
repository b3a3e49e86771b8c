package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"

	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
)

// fakeRunner records invocations and serves canned responses keyed by the
// joined command line.
type fakeRunner struct {
	tools     map[string]bool
	responses map[string]string
	errors    map[string]error
	calls     []string
}

func newFakeRunner(tools ...string) *fakeRunner {
	r := &fakeRunner{
		tools:     make(map[string]bool),
		responses: make(map[string]string),
		errors:    make(map[string]error),
	}
	for _, tool := range tools {
		r.tools[tool] = true
	}
	return r
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := name + " " + strings.Join(args, " ")
	r.calls = append(r.calls, cmd)
	if err, ok := r.errors[cmd]; ok {
		return "", err
	}
	return r.responses[cmd], nil
}

func (r *fakeRunner) LookPath(name string) bool {
	return r.tools[name]
}

func (r *fakeRunner) called(substr string) bool {
	for _, c := range r.calls {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

func gtkThemeData() entity.ThemeData {
	return entity.ThemeData{
		ThemeName: "Nord",
		Toolkit:   entity.ToolkitGTK,
		Colors: map[string]color.Value{
			"theme_bg_color":          color.New(0x2e, 0x34, 0x40),
			"theme_selected_bg_color": color.New(0x88, 0xc0, 0xd0),
		},
	}
}

func TestGTKHandler_Apply(t *testing.T) {
	runner := newFakeRunner("gsettings")
	configDir := t.TempDir()
	h := NewGTKHandler(runner, configDir)

	require.True(t, h.IsAvailable())

	result := h.ApplyTheme(context.Background(), gtkThemeData())
	require.True(t, result.Success, "apply failed: %v", result.Err)
	assert.Equal(t, entity.ToolkitGTK, result.Toolkit)

	for _, rel := range []string{"gtk-3.0/gtk.css", "gtk-4.0/gtk.css"} {
		content, err := os.ReadFile(filepath.Join(configDir, rel))
		require.NoError(t, err, rel)
		assert.Contains(t, string(content), "@define-color theme_bg_color #2e3440;")
		// defaults fill variables the theme left unset
		assert.Contains(t, string(content), "@define-color theme_fg_color #ffffff;")
	}

	settings, err := os.ReadFile(filepath.Join(configDir, "gtk-3.0", "settings.ini"))
	require.NoError(t, err)
	assert.Contains(t, string(settings), "gtk-theme-name=Nord")

	assert.True(t, runner.called("gsettings set org.gnome.desktop.interface gtk-theme Nord"))
}

func TestGTKHandler_ApplyIsDeterministic(t *testing.T) {
	runner := newFakeRunner("gsettings")
	configDir := t.TempDir()
	h := NewGTKHandler(runner, configDir)

	require.True(t, h.ApplyTheme(context.Background(), gtkThemeData()).Success)
	first, err := os.ReadFile(filepath.Join(configDir, "gtk-3.0", "gtk.css"))
	require.NoError(t, err)

	require.True(t, h.ApplyTheme(context.Background(), gtkThemeData()).Success)
	second, err := os.ReadFile(filepath.Join(configDir, "gtk-3.0", "gtk.css"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestGTKHandler_GsettingsFailure(t *testing.T) {
	runner := newFakeRunner("gsettings")
	runner.errors["gsettings set org.gnome.desktop.interface gtk-theme Nord"] = errors.New("dconf unavailable")
	h := NewGTKHandler(runner, t.TempDir())

	result := h.ApplyTheme(context.Background(), gtkThemeData())
	assert.False(t, result.Success)
	assert.Error(t, result.Err)
}

func TestGTKHandler_CurrentTheme(t *testing.T) {
	runner := newFakeRunner("gsettings")
	runner.responses["gsettings get org.gnome.desktop.interface gtk-theme"] = "'Adwaita-dark'"
	h := NewGTKHandler(runner, t.TempDir())

	name, err := h.CurrentTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Adwaita-dark", name, "gsettings quoting is stripped")
}

func TestGTKHandler_Unavailable(t *testing.T) {
	h := NewGTKHandler(newFakeRunner(), t.TempDir())
	assert.False(t, h.IsAvailable())
}

func TestQtHandler_Apply(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "qt5ct"), 0o755))
	h := NewQtHandler(configDir)

	require.True(t, h.IsAvailable())

	data := entity.ThemeData{
		ThemeName: "Nord",
		Toolkit:   entity.ToolkitQt,
		Colors: map[string]color.Value{
			"Window":    color.New(0x2e, 0x34, 0x40),
			"Highlight": color.New(0x88, 0xc0, 0xd0),
		},
	}
	result := h.ApplyTheme(context.Background(), data)
	require.True(t, result.Success, "apply failed: %v", result.Err)

	schemePath := filepath.Join(configDir, "qt5ct", "colors", "themectl.conf")
	scheme, err := ini.Load(schemePath)
	require.NoError(t, err)

	active := scheme.Section("ColorScheme").Key("active_colors").String()
	colors := strings.Split(active, ", ")
	require.Len(t, colors, len(qtPaletteOrder))

	// Window sits at index 10 of the palette order, Highlight at 12.
	assert.Equal(t, "#2e3440", colors[10])
	assert.Equal(t, "#88c0d0", colors[12])
	// Unset roles come from handler defaults, not from the translator.
	assert.Equal(t, qtDefaults["Button"], colors[1])

	assert.Equal(t, "Nord", scheme.Section("General").Key("theme").String())

	conf, err := ini.Load(filepath.Join(configDir, "qt5ct", "qt5ct.conf"))
	require.NoError(t, err)
	assert.Equal(t, "true", conf.Section("Appearance").Key("custom_palette").String())
	assert.Equal(t, schemePath, conf.Section("Appearance").Key("color_scheme_path").String())
}

func TestQtHandler_CurrentTheme(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(configDir, "qt6ct"), 0o755))
	h := NewQtHandler(configDir)

	data := entity.ThemeData{ThemeName: "Dracula", Toolkit: entity.ToolkitQt,
		Colors: map[string]color.Value{}}
	require.True(t, h.ApplyTheme(context.Background(), data).Success)

	name, err := h.CurrentTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dracula", name)
}

func TestQtHandler_UnavailableWithoutConfigDirs(t *testing.T) {
	h := NewQtHandler(t.TempDir())
	assert.False(t, h.IsAvailable())

	result := h.ApplyTheme(context.Background(), entity.ThemeData{ThemeName: "x"})
	assert.False(t, result.Success)
}

func TestFlatpakHandler_Apply(t *testing.T) {
	runner := newFakeRunner("flatpak")
	h := NewFlatpakHandler(runner, t.TempDir())

	require.True(t, h.IsAvailable())

	data := entity.ThemeData{ThemeName: "Nord", Toolkit: entity.ToolkitFlatpak}
	result := h.ApplyTheme(context.Background(), data)
	require.True(t, result.Success, "apply failed: %v", result.Err)

	assert.True(t, runner.called("--filesystem=~/.themes:ro"))
	assert.True(t, runner.called("--env=GTK_THEME=Nord"))
}

func TestFlatpakHandler_CurrentTheme(t *testing.T) {
	runner := newFakeRunner("flatpak")
	runner.responses["flatpak override --user --show"] = "[Context]\nfilesystems=~/.themes:ro;\n\n[Environment]\nGTK_THEME=Nord\n"
	h := NewFlatpakHandler(runner, t.TempDir())

	name, err := h.CurrentTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Nord", name)
}

func TestFlatpakHandler_Targets(t *testing.T) {
	dataDir := "/home/u/.local/share"
	h := NewFlatpakHandler(newFakeRunner("flatpak"), dataDir)
	assert.Equal(t, []string{"/home/u/.local/share/flatpak/overrides/global"}, h.Targets())
}

func TestSnapHandler_Apply(t *testing.T) {
	runner := newFakeRunner("snap")
	runner.responses["snap list gtk-common-themes"] = "Name Version Rev"
	runner.responses["snap connections gtk-common-themes"] = strings.Join([]string{
		"Interface      Plug                          Slot  Notes",
		"content        firefox:gtk-3-themes          gtk-common-themes:gtk-3-themes  -",
		"content        spotify:gtk-3-themes          -     -",
	}, "\n")
	h := NewSnapHandler(runner)

	require.True(t, h.IsAvailable())

	result := h.ApplyTheme(context.Background(), entity.ThemeData{ThemeName: "Nord"})
	require.True(t, result.Success, "apply failed: %v", result.Err)
	assert.True(t, runner.called("snap connect spotify:gtk-3-themes"))
	assert.False(t, runner.called("snap connect firefox:gtk-3-themes"),
		"already-connected plugs are left alone")
}

func TestSnapHandler_MissingThemesSnapFails(t *testing.T) {
	runner := newFakeRunner("snap")
	runner.errors["snap list gtk-common-themes"] = fmt.Errorf("error: no matching snaps installed")
	h := NewSnapHandler(runner)

	result := h.ApplyTheme(context.Background(), entity.ThemeData{ThemeName: "Nord"})
	assert.False(t, result.Success)
	assert.Error(t, result.Err)
}

func TestDisconnectedThemePlugs(t *testing.T) {
	out := strings.Join([]string{
		"Interface  Plug                  Slot                            Notes",
		"content    app-a:gtk-3-themes    gtk-common-themes:gtk-3-themes  -",
		"content    app-b:icon-themes     -                               -",
		"network    app-c:network         :network                        -",
	}, "\n")

	plugs := disconnectedThemePlugs(out)
	assert.Equal(t, []string{"app-b:icon-themes"}, plugs)
}
