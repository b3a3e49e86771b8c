// Package entity defines the core domain types shared across use-cases,
// translators, and handlers.
package entity

// ToolkitID identifies one toolkit or packaging format a theme can target.
type ToolkitID string

const (
	ToolkitGTK     ToolkitID = "gtk"
	ToolkitAdwaita ToolkitID = "adwaita"
	ToolkitQt      ToolkitID = "qt"
	ToolkitFlatpak ToolkitID = "flatpak"
	ToolkitSnap    ToolkitID = "snap"
)

// AllToolkits lists every toolkit in dispatch order.
var AllToolkits = []ToolkitID{
	ToolkitGTK,
	ToolkitAdwaita,
	ToolkitQt,
	ToolkitFlatpak,
	ToolkitSnap,
}

// Valid reports whether the toolkit identifier is known.
func (t ToolkitID) Valid() bool {
	for _, known := range AllToolkits {
		if t == known {
			return true
		}
	}
	return false
}

func (t ToolkitID) String() string {
	return string(t)
}
