// Package session holds the state an interactive front end owns: the
// current fractal depth and the three terrain sliders. Every change
// rebuilds the affected geometry wholesale. Sessions are not safe for
// concurrent use; callers serialise changes.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/fractalgen/internal/logger"
)

var (
	// ErrDepthLimit is returned when an increment would pass the
	// session's depth limit.
	ErrDepthLimit = errors.New("depth limit reached")

	// ErrUnknownControl is returned for a slider that does not exist.
	ErrUnknownControl = errors.New("unknown control")
)

// Rebuild describes the most recent rebuild of a session.
type Rebuild struct {
	ID     uuid.UUID
	Reason string
	Took   time.Duration
}

// newRebuild stamps a rebuild started at start.
func newRebuild(reason string, start time.Time) Rebuild {
	return Rebuild{
		ID:     uuid.New(),
		Reason: reason,
		Took:   time.Since(start),
	}
}

// componentLogger falls back to the global logger when log is nil.
func componentLogger(log *zap.Logger, name string) *zap.Logger {
	if log != nil {
		return log.Named(name)
	}
	return logger.Named(name)
}
