package sessionstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go/mock"
	"go.uber.org/mock/gomock"

	"github.com/wvwild/adventure-hub/internal/domain/filter"
)

const testSessionKey = "adventurehub:session:s1"

// matchSet matches SET on the session key with the given trailing args and
// captures the stored payload.
func matchSet(payload *string, tail ...string) gomock.Matcher {
	return mock.MatchFn(func(cmd []string) bool {
		if len(cmd) != 3+len(tail) || cmd[0] != "SET" || cmd[1] != testSessionKey {
			return false
		}
		for i, arg := range tail {
			if cmd[3+i] != arg {
				return false
			}
		}
		*payload = cmd[2]
		return true
	}, "SET "+testSessionKey)
}

func TestValkeyStoreRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	store := NewValkeyStore(client, "")
	ctx := context.Background()

	state := filter.DefaultState()
	state.Season = filter.NewTagSet("fall", "winter")
	state.Elevation = filter.ElevationRange{Min: 100, Max: 2000}

	var stored string
	client.EXPECT().Do(ctx, matchSet(&stored, "EX", "1800")).Return(mock.Result(mock.ValkeyString("OK")))
	require.NoError(t, store.Save(ctx, "s1", state, 30*time.Minute))
	require.JSONEq(t, `{"season":["fall","winter"],"gear":[],"elevation":[100,2000],"suitability":[]}`, stored)

	client.EXPECT().Do(ctx, mock.Match("GET", testSessionKey)).Return(mock.Result(mock.ValkeyString(stored)))
	got, ok, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, state.Equal(got))
	require.Empty(t, got.Difficulty)
	require.Nil(t, got.Gear)
	require.Equal(t, filter.ElevationRange{Min: 100, Max: 2000}, got.Elevation)
}

func TestValkeyStoreTTLRounding(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	store := NewValkeyStore(client, "adventurehub")
	ctx := context.Background()

	var stored string
	client.EXPECT().Do(ctx, matchSet(&stored, "EX", "1")).Return(mock.Result(mock.ValkeyString("OK")))
	require.NoError(t, store.Save(ctx, "s1", filter.DefaultState(), 200*time.Millisecond))

	client.EXPECT().Do(ctx, matchSet(&stored)).Return(mock.Result(mock.ValkeyString("OK")))
	require.NoError(t, store.Save(ctx, "s1", filter.DefaultState(), 0))
}

func TestValkeyStoreMissingSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	store := NewValkeyStore(client, "")
	ctx := context.Background()

	client.EXPECT().Do(ctx, mock.Match("GET", testSessionKey)).Return(mock.Result(mock.ValkeyNil()))
	_, ok, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestValkeyStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	store := NewValkeyStore(client, "")
	ctx := context.Background()

	client.EXPECT().Do(ctx, mock.Match("GET", testSessionKey)).Return(mock.ErrorResult(errors.New("connection refused")))
	_, ok, err := store.Load(ctx, "s1")
	require.ErrorContains(t, err, "connection refused")
	require.False(t, ok)

	client.EXPECT().Do(ctx, mock.Match("GET", testSessionKey)).Return(mock.Result(mock.ValkeyString("{not json")))
	_, ok, err = store.Load(ctx, "s1")
	require.ErrorContains(t, err, "decode session s1")
	require.False(t, ok)
}

func TestValkeyStoreDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewClient(ctrl)
	store := NewValkeyStore(client, "")
	ctx := context.Background()

	client.EXPECT().Do(ctx, mock.Match("DEL", testSessionKey)).Return(mock.Result(mock.ValkeyInt64(1)))
	require.NoError(t, store.Delete(ctx, "s1"))
}
