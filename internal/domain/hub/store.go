package hub

import (
	"context"
	"time"

	"github.com/wvwild/adventure-hub/internal/domain/filter"
)

// SessionStore keeps the filter state of live sessions. Entries vanish after
// their ttl and are never read back once deleted.
type SessionStore interface {
	Save(ctx context.Context, id string, state filter.State, ttl time.Duration) error
	Load(ctx context.Context, id string) (filter.State, bool, error)
	Delete(ctx context.Context, id string) error
}
