package inmemory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"goshortlink/cache/cacher"
)

// New returns an in-process cache engine, the default when no Redis is
// configured.
func New(defaultExp, clearInterval time.Duration) cacher.Engine {
	return &inMemory{
		engine: gocache.New(defaultExp, clearInterval),
	}
}

type inMemory struct {
	engine *gocache.Cache
}

func (i *inMemory) Get(_ context.Context, key string) (string, error) {
	data, found := i.engine.Get(key)
	if !found {
		return "", cacher.ErrEntryNotFound
	}
	value, ok := data.(string)
	if !ok {
		return "", cacher.ErrUnexpectedReply
	}
	return value, nil
}

func (i *inMemory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	i.engine.Set(key, value, ttl)
	return nil
}

func (i *inMemory) Remove(_ context.Context, key string) error {
	i.engine.Delete(key)
	return nil
}
