// Package port defines the interfaces the application layer depends on;
// infrastructure adapters implement them.
package port

import (
	"context"

	"github.com/avolut/themectl/internal/domain/entity"
)

// Handler applies translated theme data to one toolkit or packaging format.
// The orchestrator holds a collection of Handlers and never branches on the
// concrete type behind the interface.
type Handler interface {
	// Toolkit identifies which toolkit this handler serves.
	Toolkit() entity.ToolkitID

	// IsAvailable reports whether the toolkit is usable on this system.
	// Unavailable handlers are skipped entirely: they count neither as
	// success nor as failure.
	IsAvailable() bool

	// Targets lists the file-system paths this handler mutates. The
	// orchestrator backs these up before any handler runs.
	Targets() []string

	// ApplyTheme writes the theme. It must never panic across this
	// boundary and must respect ctx so a stuck external tool cannot block
	// the orchestrator forever.
	ApplyTheme(ctx context.Context, data entity.ThemeData) entity.HandlerResult

	// CurrentTheme reports the theme the toolkit currently has active.
	// Fetched on demand, never cached.
	CurrentTheme(ctx context.Context) (string, error)
}
