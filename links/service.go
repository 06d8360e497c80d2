// Package links implements the shortening core: registering links,
// resolving short codes with cache-aside lookups and click recording, and
// owner-gated deactivation. All durable state lives behind the repository
// and cache collaborators; the service itself holds nothing mutable, so one
// instance serves any number of concurrent requests.
package links

import (
	"time"

	"go.uber.org/zap"

	"goshortlink/cache/cacher"
	"goshortlink/keygen"
	"goshortlink/repository"
)

const (
	cacheTTL       = time.Hour
	cacheKeyPrefix = "url:"

	// Collisions in a 62^6 space are rare enough that hitting this bound
	// means something is wrong with the store or the entropy source.
	maxGenerateAttempts = 5
)

type Service struct {
	db    repository.Repository
	cache cacher.Engine
	log   *zap.Logger

	// Injection points for tests.
	generate func() (string, error)
	now      func() time.Time
}

func New(db repository.Repository, cache cacher.Engine, log *zap.Logger) *Service {
	return &Service{
		db:       db,
		cache:    cache,
		log:      log,
		generate: keygen.Generate,
		now:      time.Now,
	}
}

func cacheKey(code string) string {
	return cacheKeyPrefix + code
}
