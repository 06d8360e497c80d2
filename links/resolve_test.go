package links

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const exampleURL = "https://example.com/very/long/path"

func TestResolve_unknown_code(t *testing.T) {
	db := newFakeRepo()
	svc, _ := newTestService(db)

	_, err := svc.Resolve(context.Background(), "nosuch", "", "")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, db.clickCount())
}

func TestResolve_unissuable_code_skips_store(t *testing.T) {
	db := newFakeRepo()
	svc, _ := newTestService(db)

	// Neither a generated code nor a possible alias; answered before any
	// cache or store lookup.
	for _, code := range []string{"x", "my code", strings.Repeat("a", 21)} {
		_, err := svc.Resolve(context.Background(), code, "", "")
		assert.ErrorIs(t, err, ErrNotFound, code)
	}
	assert.Equal(t, 0, db.findCalls())
}

func TestResolve_alias_length_codes_reach_store(t *testing.T) {
	db := newFakeRepo()
	db.seed("demo", exampleURL, nil, true, nil)
	svc, _ := newTestService(db)

	got, err := svc.Resolve(context.Background(), "demo", "", "")
	assert.NoError(t, err)
	assert.Equal(t, exampleURL, got)
}

func TestResolve_inactive_link(t *testing.T) {
	db := newFakeRepo()
	db.seed("aaaaaa", exampleURL, nil, false, nil)
	svc, engine := newTestService(db)

	_, err := svc.Resolve(context.Background(), "aaaaaa", "", "")
	assert.ErrorIs(t, err, ErrLinkInactive)
	assert.Equal(t, 0, db.clickCount(), "no click for an inactive link")

	_, err = engine.Get(context.Background(), cacheKey("aaaaaa"))
	assert.Error(t, err, "inactive links must not be cached")
}

func TestResolve_expired_link(t *testing.T) {
	db := newFakeRepo()
	past := time.Now().Add(-time.Minute)
	db.seed("bbbbbb", exampleURL, nil, true, &past)
	svc, _ := newTestService(db)

	_, err := svc.Resolve(context.Background(), "bbbbbb", "", "")
	assert.ErrorIs(t, err, ErrLinkInactive)
	assert.Equal(t, 0, db.clickCount())
}

func TestResolve_cache_miss_fills_cache_and_records_click(t *testing.T) {
	db := newFakeRepo()
	db.seed("cccccc", exampleURL, nil, true, nil)
	svc, engine := newTestService(db)

	got, err := svc.Resolve(context.Background(), "cccccc", "203.0.113.9", "curl/8.0")
	assert.NoError(t, err)
	assert.Equal(t, exampleURL, got)

	cached, err := engine.Get(context.Background(), cacheKey("cccccc"))
	assert.NoError(t, err)
	assert.Equal(t, exampleURL, cached)

	assert.Equal(t, 1, db.clickCount())
	assert.Equal(t, "203.0.113.9", db.clicks[0].IPAddress)
	assert.Equal(t, "curl/8.0", db.clicks[0].UserAgent)
}

func TestResolve_cache_absorbs_repeat_lookups_but_every_call_clicks(t *testing.T) {
	db := newFakeRepo()
	db.seed("dddddd", exampleURL, nil, true, nil)
	svc, _ := newTestService(db)

	for i := 0; i < 3; i++ {
		got, err := svc.Resolve(context.Background(), "dddddd", "", "")
		assert.NoError(t, err)
		assert.Equal(t, exampleURL, got)
	}

	assert.Equal(t, 3, db.clickCount())
	// First call misses (one resolution read plus the click re-fetch); the
	// two cache hits only re-fetch for their clicks.
	assert.Equal(t, 4, db.findCalls())
}

func TestResolve_cache_hit_skips_state_check(t *testing.T) {
	db := newFakeRepo()
	db.seed("eeeeee", exampleURL, nil, false, nil)
	svc, engine := newTestService(db)

	// A deactivated link whose cache entry has not expired yet still
	// resolves; staleness is bounded by the TTL.
	assert.NoError(t, engine.Set(context.Background(), cacheKey("eeeeee"), exampleURL, time.Hour))

	got, err := svc.Resolve(context.Background(), "eeeeee", "", "")
	assert.NoError(t, err)
	assert.Equal(t, exampleURL, got)
	assert.Equal(t, 1, db.clickCount(), "cache hits still record clicks")
}

func TestResolve_click_skipped_when_link_vanishes(t *testing.T) {
	db := newFakeRepo()
	svc, engine := newTestService(db)

	// Cache entry outlives the store row.
	assert.NoError(t, engine.Set(context.Background(), cacheKey("ffffff"), exampleURL, time.Hour))

	got, err := svc.Resolve(context.Background(), "ffffff", "", "")
	assert.NoError(t, err, "resolution succeeds even when the click cannot be recorded")
	assert.Equal(t, exampleURL, got)
	assert.Equal(t, 0, db.clickCount())
}
