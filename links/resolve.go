package links

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshortlink/cache/cacher"
	"goshortlink/keygen"
	"goshortlink/models"
	"goshortlink/repository"
)

// Resolve maps a short code to its original URL and records exactly one
// click per successful call.
//
// A cache hit returns the cached URL without re-checking the link's
// active/expiry state: freshness is bounded by the cache TTL, trading strict
// consistency for throughput. On a miss the store is authoritative; inactive
// and expired links fail without a cache write or a click.
func (s *Service) Resolve(ctx context.Context, code, clientIP, userAgent string) (string, error) {
	if !issuableCode(code) {
		return "", ErrNotFound
	}

	cached, err := s.cachedURL(ctx, code)
	if err == nil {
		s.recordClick(ctx, code, clientIP, userAgent)
		return cached, nil
	}
	if !errors.Is(err, cacher.ErrEntryNotFound) {
		// A failing cache degrades to a miss; the store still answers.
		s.log.Warn("cache lookup failed", zap.String("code", code), zap.Error(err))
	}

	link, err := s.findByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("load link: %w", err)
	}
	if !link.Active || link.IsExpired(s.now()) {
		return "", ErrLinkInactive
	}

	if err := s.cache.Set(ctx, cacheKey(code), link.OriginalURL, cacheTTL); err != nil {
		s.log.Warn("cache fill failed", zap.String("code", code), zap.Error(err))
	}
	s.recordClick(ctx, code, clientIP, userAgent)
	return link.OriginalURL, nil
}

// issuableCode reports whether code could ever have been issued: either a
// generated code or a custom alias. Anything else is answered without
// touching the cache or the store.
func issuableCode(code string) bool {
	return keygen.Validate(code) == nil || validateAlias(code) == nil
}

// cachedURL reads the cache, retrying once on transient failure. The read is
// idempotent so the retry is safe.
func (s *Service) cachedURL(ctx context.Context, code string) (string, error) {
	value, err := s.cache.Get(ctx, cacheKey(code))
	if err != nil && !errors.Is(err, cacher.ErrEntryNotFound) && ctx.Err() == nil {
		value, err = s.cache.Get(ctx, cacheKey(code))
	}
	return value, err
}

// findByCode reads the store, retrying once on transient failure.
func (s *Service) findByCode(ctx context.Context, code string) (*models.Link, error) {
	link, err := s.db.FindByCode(ctx, code)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) && ctx.Err() == nil {
		link, err = s.db.FindByCode(ctx, code)
	}
	return link, err
}

// recordClick appends one click for code. The link is re-fetched so that a
// concurrent deactivation between lookup and recording skips the click
// silently instead of failing the resolution. Insert failures are logged,
// never retried: a retried insert risks duplicate click rows.
func (s *Service) recordClick(ctx context.Context, code, clientIP, userAgent string) {
	link, err := s.db.FindByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, repository.ErrRecordNotFound) {
			s.log.Warn("click lookup failed", zap.String("code", code), zap.Error(err))
		}
		return
	}
	click := &models.Click{
		ID:        uuid.New(),
		LinkID:    link.ID,
		ClickedAt: s.now().UTC(),
		IPAddress: clientIP,
		UserAgent: userAgent,
	}
	if err := s.db.InsertClick(ctx, click); err != nil {
		s.log.Warn("click insert failed", zap.String("code", code), zap.Error(err))
	}
}
