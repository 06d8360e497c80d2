package links

import "errors"

var (
	ErrNotFound      = errors.New("short link not found")
	ErrLinkInactive  = errors.New("short link is inactive or expired")
	ErrAliasConflict = errors.New("custom alias already taken")
	ErrForbidden     = errors.New("requester does not own this link")

	ErrInvalidURL    = errors.New("original URL must be an absolute http or https URL")
	ErrInvalidAlias  = errors.New("alias must be 3-20 characters of letters, digits, '-' or '_'")
	ErrExpiryInPast  = errors.New("expiry must be in the future")
	ErrCodeExhausted = errors.New("could not find a free short code")
)
