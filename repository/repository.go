package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"goshortlink/models"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateCode  = errors.New("short code already exists")
	ErrDuplicateEmail = errors.New("email already registered")

	errNotImplemented = errors.New("not implemented")
)

// Repository is the authoritative store for links and clicks. Implementations
// must be safe for concurrent use; every write is durable when the call
// returns.
type Repository interface {
	FindByCode(ctx context.Context, code string) (*models.Link, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Link, error)
	// FindByOwner returns the owner's links, newest first, with clicks loaded.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Insert(ctx context.Context, link *models.Link) error
	InsertClick(ctx context.Context, click *models.Click) error
	// Deactivate flips the active flag off; the row is retained.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
}

// UnimplementedRepository lets test doubles implement only the methods they
// record.
type UnimplementedRepository struct{}

func (UnimplementedRepository) FindByCode(ctx context.Context, code string) (*models.Link, error) {
	return nil, errNotImplemented
}

func (UnimplementedRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	return nil, errNotImplemented
}

func (UnimplementedRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error) {
	return nil, errNotImplemented
}

func (UnimplementedRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	return false, errNotImplemented
}

func (UnimplementedRepository) Insert(ctx context.Context, link *models.Link) error {
	return errNotImplemented
}

func (UnimplementedRepository) InsertClick(ctx context.Context, click *models.Click) error {
	return errNotImplemented
}

func (UnimplementedRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	return errNotImplemented
}
