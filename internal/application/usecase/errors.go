package usecase

import (
	"errors"
	"fmt"
)

// ErrApplyInProgress is returned when a second mutating operation starts
// while one is already between BackingUp and the end of RollingBack.
var ErrApplyInProgress = errors.New("another theme operation is in progress")

// ErrRollbackFailed marks the worst case: the apply failed and the restore
// of the pre-apply backup failed too, so the system may be inconsistent and
// needs manual recovery.
var ErrRollbackFailed = errors.New("rollback failed - manual recovery required")

// ThemeNotFoundError reports an unknown theme name, carrying the closest
// installed match when one exists.
type ThemeNotFoundError struct {
	Name       string
	Suggestion string
}

func (e *ThemeNotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("theme %q not found (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("theme %q not found", e.Name)
}
