package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Env struct {
	AppEnv         string        `envconfig:"APP_ENV"         default:"development"`
	AppPort        int           `envconfig:"APP_PORT"        default:"8080"`
	DBHost         string        `envconfig:"DB_HOST"         default:"localhost"`
	DBPort         int           `envconfig:"DB_PORT"         default:"5432"`
	DBName         string        `envconfig:"DB_NAME"         default:"shortlink"`
	DBUser         string        `envconfig:"DB_USER"         default:"shortlink"`
	DBPassword     string        `envconfig:"DB_PASSWORD"     default:"shortlink"`
	CacheEngine    string        `envconfig:"CACHE_ENGINE"    default:"memory"`
	CacheHost      string        `envconfig:"CACHE_HOST"      default:"localhost"`
	CachePort      int           `envconfig:"CACHE_PORT"      default:"6379"`
	RedirectOrigin string        `envconfig:"REDIRECT_ORIGIN" default:"http://localhost:8080"`
	JWTSecret      string        `envconfig:"JWT_SECRET"      default:"dev-secret-change-me"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL"       default:"168h"`
}

func Process() (env Env, err error) {
	err = envconfig.Process("", &env)
	return
}
