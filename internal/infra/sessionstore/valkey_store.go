package sessionstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/wvwild/adventure-hub/internal/domain/filter"
	"github.com/wvwild/adventure-hub/internal/domain/hub"
)

// ValkeyStore keeps session state in a Valkey-compatible database so several
// replicas can serve the same session.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "adventurehub"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Save implements hub.SessionStore.
func (s *ValkeyStore) Save(ctx context.Context, id string, state filter.State, ttl time.Duration) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	builder := s.client.B().Set().Key(s.sessionKey(id)).Value(string(payload))
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

// Load implements hub.SessionStore.
func (s *ValkeyStore) Load(ctx context.Context, id string) (filter.State, bool, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.sessionKey(id)).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return filter.State{}, false, nil
		}
		return filter.State{}, false, err
	}
	state := filter.DefaultState()
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return filter.State{}, false, fmt.Errorf("decode session %s: %w", id, err)
	}
	return state, true, nil
}

// Delete implements hub.SessionStore.
func (s *ValkeyStore) Delete(ctx context.Context, id string) error {
	return s.client.Do(ctx, s.client.B().Del().Key(s.sessionKey(id)).Build()).Error()
}

func (s *ValkeyStore) sessionKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

var _ hub.SessionStore = (*ValkeyStore)(nil)
