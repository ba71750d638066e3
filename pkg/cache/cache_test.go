package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	texerrors "github.com/texweave/texweave/pkg/errors"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || hit || data != nil {
		t.Errorf("Get() = %q, %v, %v; want miss", data, hit, err)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if _, hit, _ := c.Get(ctx, "missing"); hit {
		t.Error("Get(missing) should miss")
	}

	if err := c.Set(ctx, "k", []byte("\\section{A}\n"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "\\section{A}\n" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete(missing) error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	stats, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 2 || stats.Expired != 1 {
		t.Errorf("Stats() = %+v, want 2 entries with 1 expired", stats)
	}

	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("zero ttl entry should not expire")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)

	if err := os.WriteFile(c.path("k"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v, want silent miss", hit, err)
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}
	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Fatalf("Clear() = %d, %v; want 3", n, err)
	}
	if stats, _ := c.Stats(); stats.Entries != 0 {
		t.Errorf("Stats after Clear = %+v", stats)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := BuildKeyOpts{Format: "toml", Class: "article"}

	k1 := k.BuildKey("abc", base)
	if !strings.HasPrefix(k1, "build:") {
		t.Errorf("BuildKey = %q, want build: prefix", k1)
	}
	if k1 != k.BuildKey("abc", base) {
		t.Error("BuildKey should be deterministic")
	}

	variants := []BuildKeyOpts{
		{Format: "yaml", Class: "article"},
		{Format: "toml", Class: "report"},
		{Format: "toml", Class: "article", Packages: []string{"amsmath"}},
		{Format: "toml", Class: "article", Outline: true},
		{Format: "toml", Class: "article", Version: "v1.2.0"},
	}
	for _, v := range variants {
		if k.BuildKey("abc", v) == k1 {
			t.Errorf("BuildKey(%+v) should differ from base", v)
		}
	}
	if k.BuildKey("abd", base) == k1 {
		t.Error("different sources should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(nil, "api:")
	got := scoped.BuildKey("abc", BuildKeyOpts{Format: "json"})
	want := "api:" + NewDefaultKeyer().BuildKey("abc", BuildKeyOpts{Format: "json"})
	if got != want {
		t.Errorf("BuildKey = %q, want %q", got, want)
	}
}

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()
	errBoom := errors.New("boom")

	calls := 0
	err := RetryWithBackoff(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 2 {
			return Retryable(errBoom)
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry then succeed: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, 3, time.Millisecond, func() error {
		calls++
		return errBoom
	})
	if err != errBoom || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d", err, calls)
	}

	calls = 0
	err = RetryWithBackoff(ctx, 3, time.Millisecond, func() error {
		calls++
		return Retryable(errBoom)
	})
	if !errors.Is(err, errBoom) || calls != 3 {
		t.Errorf("exhausted: err=%v calls=%d", err, calls)
	}

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	err = RetryWithBackoff(cctx, 3, time.Hour, func() error { return Retryable(errBoom) })
	if err != context.Canceled {
		t.Errorf("canceled: err=%v", err)
	}

	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
}

func TestNewRedisCacheRequiresAddr(t *testing.T) {
	_, err := NewRedisCache(context.Background(), RedisConfig{})
	if !texerrors.Is(err, texerrors.ErrCodeInvalidArgument) {
		t.Errorf("NewRedisCache() error = %v, want INVALID_ARGUMENT", err)
	}
}
