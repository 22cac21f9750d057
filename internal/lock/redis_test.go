package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func newRedisLocker(t *testing.T, ttl, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, ttl, wait, zap.NewNop()), mr
}

func TestRedisLocker_AcquireAndRelease(t *testing.T) {
	l, mr := newRedisLocker(t, 10*time.Second, time.Second)
	key := EventKey(1)

	release, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	if !mr.Exists(key) {
		t.Fatalf("expected key %s to be set", key)
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > 10*time.Second {
		t.Fatalf("expected ttl within 10s, got %s", ttl)
	}

	release()
	if mr.Exists(key) {
		t.Fatalf("expected key removed after release")
	}

	// liberar de novo não falha nem apaga nada
	release()

	again, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	again()
}

func TestRedisLocker_TimesOutWhileHeld(t *testing.T) {
	l, _ := newRedisLocker(t, 10*time.Second, 120*time.Millisecond)
	key := EventKey(2)

	release, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	started := time.Now()
	_, err = l.Acquire(context.Background(), key)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	if waited := time.Since(started); waited < 100*time.Millisecond {
		t.Fatalf("expected to wait for the lock, returned after %s", waited)
	}

	// outra chave não é afetada
	other, err := l.Acquire(context.Background(), EventKey(3))
	if err != nil {
		t.Fatalf("acquire other key: %v", err)
	}
	other()
}

func TestRedisLocker_WaitsUntilReleased(t *testing.T) {
	l, _ := newRedisLocker(t, 10*time.Second, 2*time.Second)
	key := EventKey(4)

	release, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	go func() {
		time.Sleep(100 * time.Millisecond)
		release()
	}()

	second, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("expected lock after release, got %v", err)
	}
	second()
}

func TestRedisLocker_ContextCancelled(t *testing.T) {
	l, _ := newRedisLocker(t, 10*time.Second, 5*time.Second)
	key := EventKey(5)

	release, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if _, err := l.Acquire(ctx, key); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestRedisLocker_StaleReleaseKeepsNewHolder(t *testing.T) {
	l, mr := newRedisLocker(t, time.Second, 200*time.Millisecond)
	key := EventKey(6)

	stale, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire: %v", err)
	}

	// a trava expira e outro processo assume
	mr.FastForward(2 * time.Second)
	if mr.Exists(key) {
		t.Fatalf("expected key expired")
	}

	current, err := l.Acquire(context.Background(), key)
	if err != nil {
		t.Fatalf("acquire after expiry: %v", err)
	}
	holder, err := mr.Get(key)
	if err != nil {
		t.Fatalf("get holder token: %v", err)
	}

	stale()

	got, err := mr.Get(key)
	if err != nil {
		t.Fatalf("expected key kept after stale release, got %v", err)
	}
	if got != holder {
		t.Fatalf("expected token %q kept, got %q", holder, got)
	}

	current()
	if mr.Exists(key) {
		t.Fatalf("expected key removed by its holder")
	}
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_ = client.Close()

	if _, err := NewRedisClient(context.Background(), "://nope"); err == nil {
		t.Fatalf("expected error for invalid url")
	}

	down, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	addr := down.Addr()
	down.Close()

	if _, err := NewRedisClient(context.Background(), "redis://"+addr); err == nil {
		t.Fatalf("expected ping error with server down")
	}
}
