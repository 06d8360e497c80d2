package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goshortlink/auth"
	"goshortlink/cache/cacher"
	"goshortlink/config"
	"goshortlink/controllers"
	"goshortlink/links"
	"goshortlink/repository"
)

const (
	defaultTimeout = 30 * time.Second
)

func NewRouter(db repository.Repository, users repository.UserRepository, cache cacher.Engine, logger *zap.Logger, env config.Env) *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true

	health := new(controllers.HealthController)
	router.GET("/health", health.Status)

	authService := auth.New(users, logger, env.JWTSecret, env.TokenTTL)
	linkService := links.New(db, cache, logger)
	requireAuth := controllers.RequireAuth(authService.VerifyToken)

	account := controllers.AuthController{
		Auth: authService,
		Log:  logger,
	}
	router.POST("/api/auth/register", withTimeout(account.Register, defaultTimeout))
	router.POST("/api/auth/login", withTimeout(account.Login, defaultTimeout))

	url := controllers.UrlController{
		Links:          linkService,
		Log:            logger,
		RedirectOrigin: env.RedirectOrigin,
	}
	router.POST("/api/urls", requireAuth, withTimeout(url.Create, defaultTimeout))
	router.POST("/api/urls/anonymous", withTimeout(url.CreateAnonymous, defaultTimeout))
	router.GET("/api/urls", requireAuth, withTimeout(url.List, defaultTimeout))
	router.DELETE("/api/urls/:url_id", requireAuth, withTimeout(url.Delete, defaultTimeout))
	router.GET("/:code", withTimeout(url.Redirect, defaultTimeout))

	return router
}

func withTimeout(handler gin.HandlerFunc, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		ch := make(chan struct{}, 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					c.AbortWithStatus(http.StatusInternalServerError)
				}
				ch <- struct{}{}
			}()
			handler(c)
		}()

		select {
		case <-ch:
			c.Next()
		case <-time.After(timeout):
			// The handler goroutine is not stopped; it observes the expired
			// request context and must not write after that.
			c.AbortWithStatus(http.StatusRequestTimeout)
			c.String(http.StatusRequestTimeout, http.StatusText(http.StatusRequestTimeout))
			return
		}
	}
}
