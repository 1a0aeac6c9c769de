package seeder

import "context"

// Operation names key the skip guard.
const (
	OperationEvents         = "events"
	OperationVibePosts      = "vibe-posts"
	OperationProfileEntries = "profile-entries"
)

// Guard remembers when each seed operation last completed.
type Guard interface {
	ShouldSkip(operation string) bool
	MarkComplete(operation string)
}

type Client interface {
	SeedEvents(ctx context.Context) error
	SeedVibePosts(ctx context.Context) error
	SeedProfileEntries(ctx context.Context) error
	// RunAsync starts every seed operation in the background. Failures are logged.
	RunAsync(ctx context.Context)
	ScheduleSeeding(ctx context.Context) error
}
