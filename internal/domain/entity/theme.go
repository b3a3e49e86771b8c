package entity

import "github.com/avolut/themectl/internal/domain/color"

// ThemeInfo is what discovery hands to the core: a theme name, the raw native
// color declarations found on disk, and the toolkits the theme ships assets
// for.
type ThemeInfo struct {
	Name              string
	Path              string
	NativeColors      map[string]string
	SupportedToolkits []ToolkitID
}

// Supports reports whether the theme declares support for a toolkit.
func (t ThemeInfo) Supports(toolkit ToolkitID) bool {
	for _, tk := range t.SupportedToolkits {
		if tk == toolkit {
			return true
		}
	}
	return false
}

// ThemeData is the per-handler payload: one toolkit's translated view of a
// schema plus the file-system targets the handler writes. Each handler
// receives its own copy; payloads are never shared across handlers.
type ThemeData struct {
	ThemeName string
	Toolkit   ToolkitID
	Colors    map[string]color.Value
	Targets   []string
}

// Clone returns a deep copy so one handler's payload can never alias
// another's.
func (d ThemeData) Clone() ThemeData {
	colors := make(map[string]color.Value, len(d.Colors))
	for k, v := range d.Colors {
		colors[k] = v
	}
	targets := make([]string, len(d.Targets))
	copy(targets, d.Targets)
	return ThemeData{
		ThemeName: d.ThemeName,
		Toolkit:   d.Toolkit,
		Colors:    colors,
		Targets:   targets,
	}
}

// HandlerResult is one handler's outcome for one apply. Immutable once
// produced.
type HandlerResult struct {
	Toolkit ToolkitID
	Success bool
	Message string
	Err     error
}

// ApplicationResult aggregates every handler outcome for one apply call,
// plus the commit/rollback decision the orchestrator made.
type ApplicationResult struct {
	ThemeName         string
	Success           bool
	BackupID          string
	RollbackTriggered bool
	RollbackFailed    bool
	Results           []HandlerResult
	Skipped           []ToolkitID
}

// Succeeded counts handlers that ran and succeeded.
func (r ApplicationResult) Succeeded() int {
	n := 0
	for _, hr := range r.Results {
		if hr.Success {
			n++
		}
	}
	return n
}

// Failed counts handlers that ran and failed.
func (r ApplicationResult) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// SuccessRate is succeeded/(succeeded+failed) over invoked handlers only;
// skipped handlers are not in the denominator. Zero invoked handlers yields 0.
func (r ApplicationResult) SuccessRate() float64 {
	invoked := len(r.Results)
	if invoked == 0 {
		return 0
	}
	return float64(r.Succeeded()) / float64(invoked)
}

// CurrentThemeSnapshot reports, per toolkit, the theme each handler sees as
// active right now. Always fetched on demand, never cached.
type CurrentThemeSnapshot struct {
	Themes map[ToolkitID]string
}
