package links

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"goshortlink/models"
	"goshortlink/repository"
)

// Register creates a new short link. A non-empty customAlias is used
// verbatim as the code; otherwise codes are generated and rechecked until a
// free one is found, bounded by maxGenerateAttempts.
//
// The existence check and the insert are not atomic. Two concurrent calls
// for the same alias can both pass the check; the store's unique constraint
// is the final authority and its violation surfaces as ErrAliasConflict.
func (s *Service) Register(ctx context.Context, originalURL, customAlias string, expiresAt *time.Time, ownerID *uuid.UUID) (*models.Link, error) {
	if err := validateURL(originalURL); err != nil {
		return nil, err
	}
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return nil, ErrExpiryInPast
	}

	if customAlias != "" {
		return s.registerAlias(ctx, originalURL, customAlias, expiresAt, ownerID)
	}
	return s.registerGenerated(ctx, originalURL, expiresAt, ownerID)
}

func (s *Service) registerAlias(ctx context.Context, originalURL, alias string, expiresAt *time.Time, ownerID *uuid.UUID) (*models.Link, error) {
	if err := validateAlias(alias); err != nil {
		return nil, err
	}
	exists, err := s.db.CodeExists(ctx, alias)
	if err != nil {
		return nil, fmt.Errorf("check alias: %w", err)
	}
	if exists {
		return nil, ErrAliasConflict
	}
	link, err := s.insert(ctx, originalURL, alias, expiresAt, ownerID)
	if errors.Is(err, repository.ErrDuplicateCode) {
		// Lost the race against a concurrent registration of the same alias.
		return nil, ErrAliasConflict
	}
	return link, err
}

func (s *Service) registerGenerated(ctx context.Context, originalURL string, expiresAt *time.Time, ownerID *uuid.UUID) (*models.Link, error) {
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		code, err := s.generate()
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		exists, err := s.db.CodeExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check code: %w", err)
		}
		if exists {
			s.log.Debug("generated code collided, retrying", zap.String("code", code))
			continue
		}
		link, err := s.insert(ctx, originalURL, code, expiresAt, ownerID)
		if errors.Is(err, repository.ErrDuplicateCode) {
			// Raced another insert of the same code; counts as a collision.
			continue
		}
		return link, err
	}
	return nil, ErrCodeExhausted
}

func (s *Service) insert(ctx context.Context, originalURL, code string, expiresAt *time.Time, ownerID *uuid.UUID) (*models.Link, error) {
	link := &models.Link{
		ID:          uuid.New(),
		OriginalURL: originalURL,
		ShortCode:   code,
		OwnerID:     ownerID,
		CreatedAt:   s.now().UTC(),
		ExpiresAt:   expiresAt,
		Active:      true,
	}
	if err := s.db.Insert(ctx, link); err != nil {
		if errors.Is(err, repository.ErrDuplicateCode) {
			return nil, err
		}
		return nil, fmt.Errorf("insert link: %w", err)
	}
	return link, nil
}

func validateURL(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return ErrInvalidURL
	}
	return nil
}

func validateAlias(alias string) error {
	if len(alias) < 3 || len(alias) > 20 {
		return ErrInvalidAlias
	}
	for _, r := range alias {
		ok := (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_'
		if !ok {
			return ErrInvalidAlias
		}
	}
	return nil
}
