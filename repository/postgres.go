package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"goshortlink/models"
)

func NewPGRepo(port int, host, dbuser, dbname, password string) (*PGRepo, error) {
	args := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s",
		host, port, dbuser, dbname, password)
	db, err := gorm.Open(postgres.Open(args), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Link{}, &models.Click{}); err != nil {
		return nil, err
	}
	return &PGRepo{db: db}, nil
}

// NewPGRepoWith wraps an existing connection without migrating; it exists for
// tests that mock the SQL layer.
func NewPGRepoWith(dial gorm.Dialector, cfg gorm.Config) (*PGRepo, error) {
	db, err := gorm.Open(dial, &cfg)
	if err != nil {
		return nil, err
	}
	return &PGRepo{db: db}, nil
}

type PGRepo struct {
	db *gorm.DB
}

func (p *PGRepo) FindByCode(ctx context.Context, code string) (*models.Link, error) {
	var link models.Link
	err := p.db.WithContext(ctx).Where("short_code = ?", code).Take(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (p *PGRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	var link models.Link
	err := p.db.WithContext(ctx).Where("id = ?", id).Take(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (p *PGRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Link, error) {
	var links []models.Link
	err := p.db.WithContext(ctx).
		Preload("Clicks").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

func (p *PGRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("short_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

func (p *PGRepo) Insert(ctx context.Context, link *models.Link) error {
	if err := p.db.WithContext(ctx).Create(link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateCode
		}
		return err
	}
	return nil
}

func (p *PGRepo) InsertClick(ctx context.Context, click *models.Click) error {
	return p.db.WithContext(ctx).Create(click).Error
}

func (p *PGRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := p.db.WithContext(ctx).
		Model(&models.Link{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrRecordNotFound
	}
	return nil
}

func (p *PGRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (p *PGRepo) CreateUser(ctx context.Context, user *models.User) error {
	if err := p.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}
