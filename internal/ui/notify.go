package ui

import (
	"context"
	"fmt"

	"coworkers/internal/db"
	"coworkers/internal/draft"
)

// termNotifier prints controller feedback to the terminal.
// It implements draft.Notifier.
type termNotifier struct{}

func (termNotifier) Success(msg string) {
	fmt.Println(colorSuccess.Sprint(msg))
}

func (termNotifier) Error(msg string) {
	fmt.Println(colorError.Sprint(msg))
}

func (termNotifier) Info(msg string) {
	fmt.Println(colorMuted.Sprint(msg))
}

// noopOverlay satisfies draft.Overlay for commands that have no modal to close.
type noopOverlay struct{}

func (noopOverlay) Close(string) {}

// cacheRevalidator implements draft.Revalidator by dropping the local task
// cache so the next list fetches fresh server state.
type cacheRevalidator struct {
	cache *db.Cache
}

func (r cacheRevalidator) Invalidate() {
	_ = r.cache.InvalidateAll(context.Background())
}

// revalidator wraps the cache in the controller's revalidation contract.
func (a *App) revalidator(cache *db.Cache) draft.Revalidator {
	return cacheRevalidator{cache: cache}
}
