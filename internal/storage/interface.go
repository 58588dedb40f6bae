package storage

import (
	"context"

	"github.com/yourname/sleeplog/internal"
)

// SleepLogRepository owns the durable copy of the whole sleep log. Load
// returns entries in insertion order; Save replaces everything.
type SleepLogRepository interface {
	Load(ctx context.Context) ([]internal.SleepEntry, error)
	Save(ctx context.Context, entries []internal.SleepEntry) error
	Path() string
}
