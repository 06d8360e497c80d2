package main

import (
	"fmt"
	"log"
	"time"

	"goshortlink/cache/cacher"
	"goshortlink/cache/inmemory"
	"goshortlink/cache/redis"
	"goshortlink/config"
	"goshortlink/logger"
	"goshortlink/repository"
	"goshortlink/server"
)

const (
	defaultCacheExp      = 1 * time.Hour
	defaultClearInterval = 24 * time.Hour
)

func main() {
	env, err := config.Process()
	if err != nil {
		log.Fatalf("failed to process env: %s", err)
	}

	zaplogger, err := logger.New(env.AppEnv)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}

	db, err := repository.NewPGRepo(env.DBPort, env.DBHost, env.DBUser, env.DBName, env.DBPassword)
	if err != nil {
		log.Fatalf("failed to connect db: %s", err)
	}

	var cache cacher.Engine
	switch env.CacheEngine {
	case "redis":
		cache = redis.New(env.CacheHost, env.CachePort)
	default:
		cache = inmemory.New(defaultCacheExp, defaultClearInterval)
	}

	r := server.NewRouter(db, db, cache, zaplogger, env)
	r.Run(fmt.Sprintf(":%d", env.AppPort))
}
