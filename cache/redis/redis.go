package redis

import (
	"context"
	"fmt"
	"time"

	redigo "github.com/gomodule/redigo/redis"

	"goshortlink/cache/cacher"
)

type redis struct {
	pool *redigo.Pool
}

func New(host string, port int) cacher.Engine {
	pool := &redigo.Pool{
		Dial: func() (redigo.Conn, error) {
			return redigo.Dial("tcp", fmt.Sprintf("%s:%d", host, port))
		},

		// Periodic check
		TestOnBorrow: func(c redigo.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
	return &redis{pool}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	reply, err := r.do(ctx, "GET", key)
	if err != nil {
		return "", err
	}
	if reply == nil {
		return "", cacher.ErrEntryNotFound
	}
	value, err := redigo.String(reply, err)
	if err != nil {
		return "", cacher.ErrUnexpectedReply
	}
	return value, nil
}

func (r *redis) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := r.do(ctx, "SET", key, value, "EX", uint64(ttl.Seconds()))
	if err != nil {
		return fmt.Errorf("call SET: %w", err)
	}
	return nil
}

func (r *redis) Remove(ctx context.Context, key string) error {
	_, err := r.do(ctx, "DEL", key)
	return err
}

func (r *redis) do(ctx context.Context, commandName string, args ...interface{}) (interface{}, error) {
	c, err := r.pool.GetContext(ctx)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return c.Do(commandName, args...)
}
