package links

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshortlink/cache/cacher"
	"goshortlink/repository"
)

// Deactivate turns a link off on behalf of its owner. The row is retained so
// the code is never reused. Links without an owner cannot be deactivated
// through this path at all.
//
// The cache entry is evicted before the store write: if that write then
// fails, the next resolution misses the cache and still sees the active
// record. The reverse ordering would leave a stale cache entry serving a
// dead link for up to the full TTL.
func (s *Service) Deactivate(ctx context.Context, id, requesterID uuid.UUID) error {
	link, err := s.db.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load link: %w", err)
	}
	if link.OwnerID == nil || *link.OwnerID != requesterID {
		return ErrForbidden
	}

	if err := s.cache.Remove(ctx, cacheKey(link.ShortCode)); err != nil && !errors.Is(err, cacher.ErrEntryNotFound) {
		s.log.Warn("cache evict failed", zap.String("code", link.ShortCode), zap.Error(err))
	}
	if err := s.db.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deactivate link: %w", err)
	}
	return nil
}
