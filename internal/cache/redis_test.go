package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) *Redis {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	store, err := NewRedis("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestRedis_MissThenHit(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "statsbomb:lineups:1"); !errors.Is(err, ErrMiss) {
		t.Fatalf("Get on empty store: err = %v; want ErrMiss", err)
	}

	if err := store.Set(ctx, "statsbomb:lineups:1", []byte(`[{"team_name":"Eibar"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := store.Get(ctx, "statsbomb:lineups:1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `[{"team_name":"Eibar"}]` {
		t.Errorf("Get = %q", got)
	}
}

func TestRedis_NoExpiry(t *testing.T) {
	store := newTestRedis(t)
	ctx := context.Background()

	if err := store.Set(ctx, "statsbomb:competitions", []byte(`[]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// Historical documents never expire; the key must carry no TTL.
	if _, err := store.Get(ctx, "statsbomb:competitions"); err != nil {
		t.Fatalf("Get: %v", err)
	}
}

func TestRedis_HealthCheck(t *testing.T) {
	store := newTestRedis(t)

	if err := store.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck: %v", err)
	}
}

func TestNewRedis_BadURL(t *testing.T) {
	if _, err := NewRedis("not-a-url"); err == nil {
		t.Fatal("expected parse error")
	}
}
