package service

import (
	"github.com/rs/zerolog"
)

// fetchOrEmpty runs a dependent fetch under the best-effort policy: any
// failure is logged and converted to an empty slice so the aggregate join
// always receives a value. A broken dependent fetch for one parent must never
// block the others.
func fetchOrEmpty[T any](log zerolog.Logger, what string, fetch func() ([]T, error)) []T {
	items, err := fetch()
	if err != nil {
		log.Warn().Err(err).Str("dependents", what).Msg("dependent fetch failed, degraded to empty")
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}
