package middleware

import (
	"log/slog"
	"time"

	"github.com/vango-dev/statecore/pkg/features/store"
)

// Logging creates a middleware that logs every transition at debug level
// and every panic at error level. If logger is nil, slog.Default() is used.
func Logging[A any](logger *slog.Logger) store.Middleware[A] {
	if logger == nil {
		logger = slog.Default()
	}

	return func(next store.Transition[A]) store.Transition[A] {
		return func(action A) bool {
			name := store.ActionName(action)
			start := time.Now()

			defer func() {
				if r := recover(); r != nil {
					logger.Error("transition panicked", "action", name, "error", panicError(r))
					panic(r)
				}
			}()

			changed := next(action)
			logger.Debug("transition",
				"action", name,
				"outcome", outcomeOf(changed),
				"duration", time.Since(start),
			)
			return changed
		}
	}
}
