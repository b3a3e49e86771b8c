// Package discovery scans the theme search path and turns installed theme
// directories into ThemeInfo records.
package discovery

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/infrastructure/xdg"
	"github.com/avolut/themectl/internal/logging"
)

// defineColorRe matches GTK CSS color declarations:
// @define-color theme_bg_color #2e3440;
var defineColorRe = regexp.MustCompile(`@define-color\s+([A-Za-z_][A-Za-z0-9_]*)\s+([^;]+);`)

// Scanner implements port.ThemeLocator over a list of search directories.
type Scanner struct {
	dirs []string
}

// New creates a scanner over the standard XDG theme search path plus any
// extra directories from config.
func New(extraDirs ...string) *Scanner {
	return &Scanner{dirs: append(xdg.ThemeSearchDirs(), extraDirs...)}
}

// NewWithDirs creates a scanner over exactly the given directories.
func NewWithDirs(dirs []string) *Scanner {
	return &Scanner{dirs: dirs}
}

// Discover implements port.ThemeLocator. Earlier search directories win on
// name collisions so user themes shadow system ones. Results are sorted by
// name.
func (s *Scanner) Discover(ctx context.Context) ([]entity.ThemeInfo, error) {
	log := logging.FromContext(ctx)

	seen := make(map[string]bool)
	var themes []entity.ThemeInfo
	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Search directories are optional; a missing one is normal.
			continue
		}
		for _, e := range entries {
			if !e.IsDir() {
				continue
			}
			info, ok := s.readTheme(filepath.Join(dir, e.Name()), e.Name())
			if !ok {
				continue
			}
			key := strings.ToLower(info.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			themes = append(themes, info)
		}
	}

	sort.Slice(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})
	log.Debug().Int("count", len(themes)).Strs("dirs", s.dirs).Msg("theme scan complete")
	return themes, nil
}

// Find implements port.ThemeLocator with a case-insensitive name match.
func (s *Scanner) Find(ctx context.Context, name string) (entity.ThemeInfo, bool, error) {
	themes, err := s.Discover(ctx)
	if err != nil {
		return entity.ThemeInfo{}, false, err
	}
	for _, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return t, true, nil
		}
	}
	return entity.ThemeInfo{}, false, nil
}

// readTheme inspects one candidate directory. A directory qualifies as a
// theme when it ships an index.theme or any toolkit subdirectory.
func (s *Scanner) readTheme(path, dirName string) (entity.ThemeInfo, bool) {
	info := entity.ThemeInfo{
		Name:         dirName,
		Path:         path,
		NativeColors: make(map[string]string),
	}

	hasIndex := false
	if meta, err := ini.Load(filepath.Join(path, "index.theme")); err == nil {
		hasIndex = true
		section := meta.Section("Desktop Entry")
		if name := section.Key("Name").String(); name != "" {
			info.Name = name
		}
	}

	info.SupportedToolkits = detectToolkits(path)
	if !hasIndex && len(info.SupportedToolkits) == 0 {
		return entity.ThemeInfo{}, false
	}

	// gtk-3.0 declarations take precedence; gtk-4.0 fills the gaps.
	for _, css := range []string{
		filepath.Join(path, "gtk-3.0", "gtk.css"),
		filepath.Join(path, "gtk-4.0", "gtk.css"),
	} {
		for name, value := range parseDefineColors(css) {
			if _, exists := info.NativeColors[name]; !exists {
				info.NativeColors[name] = value
			}
		}
	}

	return info, true
}

// detectToolkits derives toolkit support from the subdirectories a theme
// ships. GTK themes are propagated into Flatpak and Snap sandboxes, so GTK
// support implies both.
func detectToolkits(path string) []entity.ToolkitID {
	has := func(sub string) bool {
		st, err := os.Stat(filepath.Join(path, sub))
		return err == nil && st.IsDir()
	}

	var toolkits []entity.ToolkitID
	if has("gtk-2.0") || has("gtk-3.0") || has("gtk-4.0") {
		toolkits = append(toolkits, entity.ToolkitGTK, entity.ToolkitFlatpak, entity.ToolkitSnap)
	}
	if has("gtk-4.0") {
		toolkits = append(toolkits, entity.ToolkitAdwaita)
	}
	if has("kde") || has("qt5") || has("qt6") {
		toolkits = append(toolkits, entity.ToolkitQt)
	}
	return toolkits
}

// parseDefineColors extracts @define-color declarations from a GTK CSS file.
// Returns an empty map when the file is missing or unreadable.
func parseDefineColors(path string) map[string]string {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	colors := make(map[string]string)
	for _, m := range defineColorRe.FindAllStringSubmatch(string(content), -1) {
		value := strings.TrimSpace(m[2])
		// @define-color may reference another variable; those are theme
		// internals, not concrete colors.
		if strings.HasPrefix(value, "@") {
			continue
		}
		colors[m[1]] = value
	}
	return colors
}

var _ port.ThemeLocator = (*Scanner)(nil)
