package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goshortlink/auth"
)

// AuthService is the slice of auth.Service the controller needs.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*auth.Result, error)
	Login(ctx context.Context, email, password string) (*auth.Result, error)
}

type AuthController struct {
	Auth AuthService
	Log  *zap.Logger
}

type credentialsReqData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a AuthController) Register(c *gin.Context) {
	var req credentialsReqData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := a.Auth.Register(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": res.Token, "email": res.Email})
	case errors.Is(err, auth.ErrEmailTaken),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		a.Log.Error("register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (a AuthController) Login(c *gin.Context) {
	var req credentialsReqData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := a.Auth.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": res.Token, "email": res.Email})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	default:
		a.Log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
