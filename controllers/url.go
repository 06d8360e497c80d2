package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshortlink/links"
	"goshortlink/models"
)

const expiresAtLayout = time.RFC3339

// Short-code lookalikes that browsers request on their own; answered 404
// without touching the resolver.
var reservedPaths = map[string]struct{}{
	"favicon.ico":                      {},
	"robots.txt":                       {},
	"apple-touch-icon.png":             {},
	"apple-touch-icon-precomposed.png": {},
}

// LinkService is the slice of links.Service the controller needs.
type LinkService interface {
	Register(ctx context.Context, originalURL, customAlias string, expiresAt *time.Time, ownerID *uuid.UUID) (*models.Link, error)
	Resolve(ctx context.Context, code, clientIP, userAgent string) (string, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]links.Summary, error)
	Deactivate(ctx context.Context, id, requesterID uuid.UUID) error
}

type UrlController struct {
	Links          LinkService
	Log            *zap.Logger
	RedirectOrigin string
}

type createReqData struct {
	OriginalUrl string `json:"originalUrl"`
	CustomAlias string `json:"customAlias"`
	ExpiresAt   string `json:"expiresAt"`

	expiresAt *time.Time
}

// parse validates the optional expiry timestamp.
func (r *createReqData) parse() error {
	if r.ExpiresAt == "" {
		return nil
	}
	t, err := time.Parse(expiresAtLayout, r.ExpiresAt)
	if err != nil {
		return fmt.Errorf("invalid expiresAt: %w", err)
	}
	r.expiresAt = &t
	return nil
}

func (u UrlController) Create(c *gin.Context) {
	ownerID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	u.create(c, &ownerID)
}

func (u UrlController) CreateAnonymous(c *gin.Context) {
	u.create(c, nil)
}

func (u UrlController) create(c *gin.Context, ownerID *uuid.UUID) {
	var req createReqData
	if err := c.ShouldBindJSON(&req); err != nil {
		u.Log.Warn("invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := req.parse(); err != nil {
		u.Log.Warn("invalid upload data", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload data"})
		return
	}

	link, err := u.Links.Register(c.Request.Context(), req.OriginalUrl, req.CustomAlias, req.expiresAt, ownerID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"id":          link.ID,
			"shortCode":   link.ShortCode,
			"shortUrl":    u.shortURL(link.ShortCode),
			"originalUrl": link.OriginalURL,
			"createdAt":   link.CreatedAt,
		})
	case errors.Is(err, links.ErrAliasConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "custom alias already taken"})
	case errors.Is(err, links.ErrInvalidURL),
		errors.Is(err, links.ErrInvalidAlias),
		errors.Is(err, links.ErrExpiryInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		u.Log.Error("create link failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (u UrlController) List(c *gin.Context) {
	ownerID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	summaries, err := u.Links.List(c.Request.Context(), ownerID)
	if err != nil {
		u.Log.Error("list links failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	out := make([]gin.H, 0, len(summaries))
	for _, s := range summaries {
		entry := gin.H{
			"id":          s.Link.ID,
			"shortCode":   s.Link.ShortCode,
			"shortUrl":    u.shortURL(s.Link.ShortCode),
			"originalUrl": s.Link.OriginalURL,
			"clickCount":  s.ClickCount,
			"createdAt":   s.Link.CreatedAt,
		}
		if s.Link.ExpiresAt != nil {
			entry["expiresAt"] = s.Link.ExpiresAt
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

func (u UrlController) Delete(c *gin.Context) {
	ownerID, ok := AuthUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id, err := uuid.Parse(c.Param("url_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
		return
	}

	err = u.Links.Deactivate(c.Request.Context(), id, ownerID)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, links.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "link not found"})
	case errors.Is(err, links.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "not your link"})
	default:
		u.Log.Error("delete link failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (u UrlController) Redirect(c *gin.Context) {
	code := c.Param("code")
	if _, reserved := reservedPaths[strings.ToLower(code)]; reserved {
		c.Status(http.StatusNotFound)
		return
	}

	target, err := u.Links.Resolve(c.Request.Context(), code, c.ClientIP(), c.Request.UserAgent())
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, target)
	case errors.Is(err, links.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "short link not found"})
	case errors.Is(err, links.ErrLinkInactive):
		// Inherited mapping; arguably a 410 fits better.
		c.JSON(http.StatusBadRequest, gin.H{"error": "short link is no longer active"})
	default:
		u.Log.Error("resolve failed", zap.String("code", code), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (u UrlController) shortURL(code string) string {
	return fmt.Sprintf("%s/%s", u.RedirectOrigin, code)
}
