package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/avolut/themectl/internal/application/port"
	"github.com/avolut/themectl/internal/domain/color"
	"github.com/avolut/themectl/internal/domain/entity"
	"github.com/avolut/themectl/internal/domain/translate"
	"github.com/avolut/themectl/internal/logging"
)

// State names the orchestrator's position in its apply state machine.
type State int32

const (
	StateIdle State = iota
	StateBackingUp
	StateTranslating
	StateApplying
	StateCommitted
	StateRollingBack
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBackingUp:
		return "backing-up"
	case StateTranslating:
		return "translating"
	case StateApplying:
		return "applying"
	case StateCommitted:
		return "committed"
	case StateRollingBack:
		return "rolling-back"
	default:
		return "unknown"
	}
}

// commitThreshold is the success-rate boundary for committing an apply.
// The comparison is strict: exactly half succeeding still rolls back.
const commitThreshold = 0.5

// defaultHandlerTimeout bounds one handler invocation so a stuck external
// tool (gsettings, flatpak, snap) cannot block the orchestrator forever.
const defaultHandlerTimeout = 10 * time.Second

// ApplyThemeUseCase sequences one theme application:
// backup -> translate -> dispatch -> aggregate -> commit or rollback.
type ApplyThemeUseCase struct {
	locator  port.ThemeLocator
	store    port.BackupStore
	handlers []port.Handler
	gate     *Gate

	handlerTimeout time.Duration
	retainBackups  int

	state atomic.Int32
}

// ApplyOption adjusts orchestrator tunables.
type ApplyOption func(*ApplyThemeUseCase)

// WithHandlerTimeout overrides the per-handler bounded wait.
func WithHandlerTimeout(d time.Duration) ApplyOption {
	return func(uc *ApplyThemeUseCase) {
		if d > 0 {
			uc.handlerTimeout = d
		}
	}
}

// WithBackupRetention overrides how many backups pruning keeps.
func WithBackupRetention(keep int) ApplyOption {
	return func(uc *ApplyThemeUseCase) {
		if keep > 0 {
			uc.retainBackups = keep
		}
	}
}

// NewApplyThemeUseCase creates the orchestrator. All mutating use-cases must
// share the same Gate.
func NewApplyThemeUseCase(
	locator port.ThemeLocator,
	store port.BackupStore,
	handlers []port.Handler,
	gate *Gate,
	opts ...ApplyOption,
) *ApplyThemeUseCase {
	uc := &ApplyThemeUseCase{
		locator:        locator,
		store:          store,
		handlers:       handlers,
		gate:           gate,
		handlerTimeout: defaultHandlerTimeout,
		retainBackups:  10,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// State reports the current state machine position.
func (uc *ApplyThemeUseCase) State() State {
	return State(uc.state.Load())
}

func (uc *ApplyThemeUseCase) setState(s State) {
	uc.state.Store(int32(s))
}

// ApplyInput names the theme to apply and optionally restricts the target
// toolkits. An empty Targets set means every registered handler.
type ApplyInput struct {
	ThemeName string
	Targets   []entity.ToolkitID
}

// Execute runs one apply. It is not reentrant: a second call while one is in
// flight fails immediately with ErrApplyInProgress.
//
// Color and handler failures never escape as errors; they are folded into
// the returned ApplicationResult. Only backup-create failures (the operation
// aborts before any handler runs) and rollback failures (manual recovery
// required) are returned as errors.
func (uc *ApplyThemeUseCase) Execute(ctx context.Context, input ApplyInput) (*entity.ApplicationResult, error) {
	if !uc.gate.TryAcquire() {
		return nil, ErrApplyInProgress
	}
	defer func() {
		uc.setState(StateIdle)
		uc.gate.Release()
	}()

	ctx = logging.WithTheme(ctx, input.ThemeName)
	log := logging.FromContext(ctx)

	info, err := uc.findTheme(ctx, input.ThemeName)
	if err != nil {
		return nil, err
	}

	enabled := uc.enabledHandlers(input.Targets)
	result := &entity.ApplicationResult{ThemeName: info.Name}

	// BackingUp: hard precondition. Without a backup a later failure has no
	// recovery path, so a create failure aborts before any handler runs.
	uc.setState(StateBackingUp)
	var targets []string
	for _, h := range enabled {
		targets = append(targets, h.Targets()...)
	}
	backup, err := uc.store.Create(ctx, info.Name, targets)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	result.BackupID = backup.ID
	log.Info().Str("backup_id", backup.ID).Int("paths", len(targets)).Msg("configuration backed up")

	// Translating: one canonical schema, then one private payload per
	// handler so nothing is shared across goroutines.
	uc.setState(StateTranslating)
	schema := uc.buildSchema(ctx, info)

	type dispatch struct {
		handler port.Handler
		data    entity.ThemeData
	}
	var invoked []dispatch
	for _, h := range enabled {
		if !h.IsAvailable() {
			result.Skipped = append(result.Skipped, h.Toolkit())
			log.Debug().Str("toolkit", h.Toolkit().String()).Msg("handler unavailable, skipped")
			continue
		}
		tr, ok := translate.For(h.Toolkit())
		if !ok {
			result.Skipped = append(result.Skipped, h.Toolkit())
			log.Warn().Str("toolkit", h.Toolkit().String()).Msg("no translator registered, skipped")
			continue
		}
		data := entity.ThemeData{
			ThemeName: info.Name,
			Toolkit:   h.Toolkit(),
			Colors:    tr.ToNative(schema),
			Targets:   h.Targets(),
		}
		invoked = append(invoked, dispatch{handler: h, data: data.Clone()})
	}

	// Applying: handlers write disjoint targets, so they run in parallel.
	// The group wait is the join barrier; no decision is made until every
	// handler finished. One handler panicking or failing must not abort its
	// siblings, so failures are converted to results, never returned.
	uc.setState(StateApplying)
	results := make([]entity.HandlerResult, len(invoked))
	var g errgroup.Group
	for i, d := range invoked {
		g.Go(func() error {
			results[i] = uc.invokeHandler(ctx, d.handler, d.data)
			return nil
		})
	}
	_ = g.Wait()
	result.Results = results

	for _, hr := range results {
		ev := log.Info()
		if !hr.Success {
			ev = log.Warn().Err(hr.Err)
		}
		ev.Str("toolkit", hr.Toolkit.String()).Bool("success", hr.Success).Msg(hr.Message)
	}

	// Decision: strict majority commits. Exactly half, or nothing invoked
	// at all, rolls back.
	if result.SuccessRate() > commitThreshold {
		uc.setState(StateCommitted)
		result.Success = true
		log.Info().
			Int("succeeded", result.Succeeded()).
			Int("failed", result.Failed()).
			Int("skipped", len(result.Skipped)).
			Msg("theme committed")

		if err := uc.store.Prune(ctx, uc.retainBackups); err != nil {
			log.Warn().Err(err).Msg("backup pruning failed")
		}
		return result, nil
	}

	uc.setState(StateRollingBack)
	result.RollbackTriggered = true
	log.Warn().
		Int("succeeded", result.Succeeded()).
		Int("failed", result.Failed()).
		Str("backup_id", backup.ID).
		Msg("success rate at or below threshold, rolling back")

	if err := uc.store.Restore(ctx, backup.ID); err != nil {
		// Both the forward and the backward path failed; the system is in
		// an unknown state. This must surface louder than an ordinary
		// failed apply.
		result.RollbackFailed = true
		log.Error().Err(err).Str("backup_id", backup.ID).
			Msg("rollback failed - configuration may be inconsistent, restore the backup manually")
		return result, fmt.Errorf("%w: restore %s: %v", ErrRollbackFailed, backup.ID, err)
	}

	log.Info().Str("backup_id", backup.ID).Msg("rolled back to previous theme")
	return result, nil
}

// findTheme resolves the theme name, attaching a closest-match suggestion
// when the lookup misses.
func (uc *ApplyThemeUseCase) findTheme(ctx context.Context, name string) (entity.ThemeInfo, error) {
	info, found, err := uc.locator.Find(ctx, name)
	if err != nil {
		return entity.ThemeInfo{}, fmt.Errorf("find theme: %w", err)
	}
	if found {
		return info, nil
	}

	notFound := &ThemeNotFoundError{Name: name}
	if all, derr := uc.locator.Discover(ctx); derr == nil {
		names := make([]string, 0, len(all))
		for _, t := range all {
			names = append(names, t.Name)
		}
		notFound.Suggestion = ClosestName(name, names)
	}
	return entity.ThemeInfo{}, notFound
}

// enabledHandlers filters registered handlers down to the requested targets.
func (uc *ApplyThemeUseCase) enabledHandlers(targets []entity.ToolkitID) []port.Handler {
	if len(targets) == 0 {
		return uc.handlers
	}
	want := make(map[entity.ToolkitID]bool, len(targets))
	for _, t := range targets {
		want[t] = true
	}
	var out []port.Handler
	for _, h := range uc.handlers {
		if want[h.Toolkit()] {
			out = append(out, h)
		}
	}
	return out
}

// buildSchema reverse-maps the theme's native declarations into the
// canonical schema. Discovery reads GTK theme files, so the GTK vocabulary
// is the reverse table. Unparsable color strings are reported and skipped,
// never fatal.
func (uc *ApplyThemeUseCase) buildSchema(ctx context.Context, info entity.ThemeInfo) entity.Schema {
	log := logging.FromContext(ctx)

	native := make(map[string]color.Value, len(info.NativeColors))
	for name, raw := range info.NativeColors {
		v, err := color.Parse(raw)
		if err != nil {
			log.Warn().Str("variable", name).Str("value", raw).Err(err).
				Msg("skipping unparsable theme color")
			continue
		}
		native[name] = v
	}

	tr, _ := translate.For(entity.ToolkitGTK)
	schema := tr.FromNative(info.Name, native)
	log.Debug().Int("native", len(native)).Int("roles", schema.Len()).Msg("canonical schema built")
	return schema
}

// invokeHandler runs one handler under the bounded-wait timeout, converting
// panics into failed results so one handler cannot take down the apply.
func (uc *ApplyThemeUseCase) invokeHandler(ctx context.Context, h port.Handler, data entity.ThemeData) (hr entity.HandlerResult) {
	defer func() {
		if r := recover(); r != nil {
			hr = entity.HandlerResult{
				Toolkit: h.Toolkit(),
				Success: false,
				Message: "handler panicked",
				Err:     fmt.Errorf("panic: %v", r),
			}
		}
	}()

	hctx, cancel := context.WithTimeout(ctx, uc.handlerTimeout)
	defer cancel()
	return h.ApplyTheme(hctx, data)
}
