// Package store holds the three resource collections behind typed
// operations: news articles, contact-form submissions and enrollment
// requests. Each store owns its slice, hands out monotonically increasing
// ids and mirrors mutations to a Persister.
package store

import (
	"coolschool-backend/internal/logger"
)

// pageSlice cuts one page out of items. A page past the end yields an
// empty slice, never an error.
func pageSlice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// totalPages is ceil(total/limit), 0 for an empty set.
func totalPages(total, limit int) int {
	return (total + limit - 1) / limit
}

// persistOrWarn writes the collection through the persister. A failed write
// keeps the in-memory state authoritative and only logs a warning, so a
// storage hiccup degrades the server to memory-only instead of failing
// requests.
func persistOrWarn[T any](p Persister[T], records []T, resource string) {
	if err := p.Save(records); err != nil {
		logger.Log.WithError(err).WithField("resource", resource).
			Warn("failed to persist collection, keeping in-memory state")
	}
}
